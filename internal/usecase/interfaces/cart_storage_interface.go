package interfaces

import "context"

// ICartStorage is the durable slot a session cart is written to after every
// mutation. Read reports found == false when the key was never written.
type ICartStorage interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
}

package usecase

import (
	"context"

	"alu_portal/internal/domain/entities"
	"alu_portal/internal/usecase/interfaces"
)

type noopMetrics struct{}

func (noopMetrics) OrderPlaced()              {}
func (noopMetrics) OrderPlacementFailed()     {}
func (noopMetrics) StatusWriteFailed()        {}
func (noopMetrics) CartRestoreCorrupted()     {}
func (noopMetrics) SetDashboard(int, float64) {}

type noopPublisher struct{}

func (noopPublisher) PublishOrderPlaced(context.Context, entities.Order) error { return nil }
func (noopPublisher) PublishStatusChanged(context.Context, entities.Order, entities.OrderStatus) error {
	return nil
}

func metricsOrNoop(m interfaces.IPortalMetrics) interfaces.IPortalMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

func publisherOrNoop(p interfaces.IOrderEventPublisher) interfaces.IOrderEventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

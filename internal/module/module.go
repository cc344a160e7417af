// Package module defines the lifecycle shared by the site's feature
// modules: register services, boot routes and consumers, shut down.
package module

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/speakuppartners/site/internal/registry"
)

// Module is a self-contained feature, such as lead intake.
type Module interface {
	Name() string

	// Register publishes the module's services to reg. Every module is
	// registered before any is booted.
	Register(reg *registry.Registry) error

	// Boot mounts routes on router and starts consumers. ctx lives as long
	// as the server.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown stops whatever Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op lifecycle methods for embedding.
type BaseModule struct{}

func (m *BaseModule) Register(*registry.Registry) error { return nil }

func (m *BaseModule) Boot(context.Context, *echo.Group, *registry.Registry) error { return nil }

func (m *BaseModule) Shutdown(context.Context) error { return nil }

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages_PutGetInvalidate(t *testing.T) {
	p := NewPages()

	_, ok := p.Get("/marketplace")
	assert.False(t, ok)

	p.Put("/marketplace", "rendered listing")
	p.Put("/dashboard-artisan/products", "rendered products")

	got, ok := p.Get("/marketplace")
	assert.True(t, ok)
	assert.Equal(t, "rendered listing", got)

	p.Invalidate("/marketplace", "/dashboard-artisan/products")

	_, ok = p.Get("/marketplace")
	assert.False(t, ok)
	_, ok = p.Get("/dashboard-artisan/products")
	assert.False(t, ok)
}

func TestPages_InvalidateUnknownPathIsNoop(t *testing.T) {
	p := NewPages()
	p.Put("/marketplace", "rendered listing")

	p.Invalidate("/never-cached")

	_, ok := p.Get("/marketplace")
	assert.True(t, ok)
}

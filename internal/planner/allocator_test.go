package planner

import (
	"testing"

	"github.com/qwe28256/phiauto/internal/geometry"
)

func TestConservativePoolMintsThenRecycles(t *testing.T) {
	p := NewConservativePool(2)

	a, ok := p.Acquire(0)
	if !ok || a != 0 {
		t.Fatalf("Acquire = %d,%v want 0,true", a, ok)
	}
	b, ok := p.Acquire(0)
	if !ok || b != 1 {
		t.Fatalf("Acquire = %d,%v want 1,true", b, ok)
	}

	if _, ok := p.Acquire(0); ok {
		t.Fatal("pool should be exhausted")
	}

	p.Release(a, 5)
	c, ok := p.Acquire(10)
	if !ok || c != a {
		t.Fatalf("Acquire after release = %d,%v want %d,true", c, ok, a)
	}
}

func TestConservativePoolRejectsEarlyReuse(t *testing.T) {
	p := NewConservativePool(1)
	id, _ := p.Acquire(0)
	p.Release(id, 5)

	if _, ok := p.Acquire(3); ok {
		t.Fatal("Acquire before release time should fail when pool is otherwise exhausted")
	}
	if got, ok := p.Acquire(5); !ok || got != id {
		t.Fatalf("Acquire at release time should succeed, got %d,%v", got, ok)
	}
}

func TestRadicalPoolReusesWithinDistance(t *testing.T) {
	p := NewRadicalPool(1, 10)
	id, ok := p.Acquire(0, geometry.Vec2{})
	if !ok {
		t.Fatal("expected initial mint to succeed")
	}
	p.Release(id, 1, geometry.Vec2{X: 5, Y: 0})

	got, ok := p.Acquire(2, geometry.Vec2{X: 8, Y: 0})
	if !ok || got != id {
		t.Fatalf("Acquire near release position should reuse, got %d,%v", got, ok)
	}
}

func TestRadicalPoolRejectsFarReuse(t *testing.T) {
	p := NewRadicalPool(1, 10)
	id, _ := p.Acquire(0, geometry.Vec2{})
	p.Release(id, 1, geometry.Vec2{X: 5, Y: 0})

	if _, ok := p.Acquire(2, geometry.Vec2{X: 5000, Y: 0}); ok {
		t.Fatal("Acquire far from release position should fail when pool is exhausted")
	}
}

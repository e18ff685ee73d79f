// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scale scales nominal sizes to the running device.

A size designed for a reference device, the Baseline, is multiplied
by the ratio of the diagonal of the current Viewport to the diagonal
of the Baseline:

	factor = sqrt(width² + height²) / sqrt(baseWidth² + baseHeight²)

Phones and tablets use separate baselines, selected by a device.Class.

The Viewport defaults to the phone baseline, so the Compact factor is
exactly 1 until SetViewport is called. Call it once at startup with
the display bounds:

	e := scale.New()
	e.SetViewport(390, 844)
	size := e.Size(18, device.Compact) // ~16.3

No input is validated. Zero, negative or non-finite dimensions
propagate through the arithmetic and may produce zero, negative,
infinite or NaN factors.
*/
package scale

import (
	"sync"

	"github.com/indextrown/ScaleKit/device"
	"github.com/indextrown/ScaleKit/geom"
)

// Engine holds the current Viewport. The zero Engine is ready to use
// and reports the phone baseline as its Viewport.
//
// Engine methods may be called from multiple goroutines. A query racing
// a SetViewport observes either the old or the new Viewport.
type Engine struct {
	mu     sync.RWMutex
	bounds geom.Rectangle
	set    bool

	classifier device.Provider
}

// Option configures an Engine.
type Option func(e *Engine)

// Bound is an Engine bound to a device class provider. It implements
// unit.Scaler. A Bound without an engine uses Default, and one without
// a provider scales for device.Compact, so the zero Bound scales phone
// sizes with the Default engine.
type Bound struct {
	engine   *Engine
	provider device.Provider
}

// New returns an Engine configured by options.
func New(options ...Option) *Engine {
	e := new(Engine)
	for _, o := range options {
		o(e)
	}
	return e
}

// WithViewport sets the initial Viewport.
func WithViewport(width, height float64) Option {
	return func(e *Engine) {
		e.bounds = geom.Size(width, height)
		e.set = true
	}
}

// WithClassifier sets the provider consulted by Auto, Scaled and
// ScaleFactor.
func WithClassifier(p device.Provider) Option {
	return func(e *Engine) {
		e.classifier = p
	}
}

// SetViewport overwrites the Viewport with a width and height. The
// values are stored as given, negative ones included.
func (e *Engine) SetViewport(width, height float64) {
	e.setBounds(geom.Size(width, height))
}

// SetBounds overwrites the Viewport with the display bounds r, in
// canonical form.
func (e *Engine) SetBounds(r geom.Rectangle) {
	e.setBounds(r.Canon())
}

func (e *Engine) setBounds(r geom.Rectangle) {
	e.mu.Lock()
	e.bounds = r
	e.set = true
	e.mu.Unlock()
}

// Reset restores the default Viewport.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.bounds = geom.Rectangle{}
	e.set = false
	e.mu.Unlock()
}

// Viewport returns the current display bounds.
func (e *Engine) Viewport() geom.Rectangle {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.set {
		return PhoneBaseline.Bounds()
	}
	return e.bounds
}

// Width returns the current Viewport width.
func (e *Engine) Width() float64 {
	return e.Viewport().Dx()
}

// Height returns the current Viewport height.
func (e *Engine) Height() float64 {
	return e.Viewport().Dy()
}

// Factor returns the diagonal ratio of the Viewport to the baseline
// of class c.
func (e *Engine) Factor(c device.Class) float64 {
	return e.Viewport().Diagonal() / BaselineFor(c).Diagonal()
}

// Size returns nominal scaled by Factor(c).
func (e *Engine) Size(nominal float64, c device.Class) float64 {
	return nominal * e.Factor(c)
}

// For returns the engine bound to the fixed class c.
func (e *Engine) For(c device.Class) Bound {
	return e.Bind(device.Static(c))
}

// Bind returns the engine bound to p. The class is looked up on
// every query; a nil p scales for device.Compact.
func (e *Engine) Bind(p device.Provider) Bound {
	return Bound{engine: e, provider: p}
}

// Auto returns the engine bound to its classifier, or to
// device.Compact when it has none.
func (e *Engine) Auto() Bound {
	if e.classifier == nil {
		return e.For(device.Compact)
	}
	return e.Bind(e.classifier)
}

// ScaleFactor is shorthand for e.Auto().Factor().
func (e *Engine) ScaleFactor() float64 {
	return e.Auto().Factor()
}

// Scaled is shorthand for e.Auto().Size(nominal).
func (e *Engine) Scaled(nominal float64) float64 {
	return e.Auto().Size(nominal)
}

// Class returns the class b currently resolves to.
func (b Bound) Class() device.Class {
	if b.provider == nil {
		return device.Compact
	}
	return b.provider.Class()
}

// Factor returns the scale factor for the bound class.
func (b Bound) Factor() float64 {
	return b.target().Factor(b.Class())
}

// Size returns nominal scaled for the bound class.
func (b Bound) Size(nominal float64) float64 {
	return b.target().Size(nominal, b.Class())
}

func (b Bound) target() *Engine {
	if b.engine == nil {
		return Default
	}
	return b.engine
}

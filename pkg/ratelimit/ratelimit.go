// Package ratelimit implementa un limitador de ventana fija en memoria.
// Es un control aprobatorio para una sola instancia: con varias réplicas el
// contador debe moverse a un almacén compartido.
package ratelimit

import (
	"sync"
	"time"
)

// Valores por defecto de la ventana.
const (
	DefaultMax    = 100
	DefaultWindow = 60 * time.Second
)

// Result resultado de una verificación.
type Result struct {
	Allowed   bool
	Remaining int       // peticiones restantes en la ventana actual
	ResetAt   time.Time // cuándo se reinicia la ventana
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter contador de ventana fija por identificador, protegido con mutex.
// Las entradas expiradas se desalojan de forma oportunista en cada Check.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
	now     func() time.Time
}

// New construye el limitador. Valores ≤ 0 toman los por defecto.
func New(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = DefaultMax
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// NewWithClock variante con reloj inyectable (tests).
func NewWithClock(max int, window time.Duration, now func() time.Time) *Limiter {
	l := New(max, window)
	l.now = now
	return l
}

// Check registra una petición del identificador y decide si se permite.
// Sin registro previo o con ventana vencida: nueva ventana con count=1.
// Con registro y count < max: incrementa y permite.
// Con count ≥ max: rechaza e informa cuándo se reinicia la ventana.
func (l *Limiter) Check(identifier string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictExpired(now)

	e, ok := l.entries[identifier]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(l.window)}
		l.entries[identifier] = e
		return Result{Allowed: true, Remaining: l.max - 1, ResetAt: e.resetAt}
	}
	if e.count < l.max {
		e.count++
		return Result{Allowed: true, Remaining: l.max - e.count, ResetAt: e.resetAt}
	}
	return Result{Allowed: false, Remaining: 0, ResetAt: e.resetAt}
}

// Max devuelve el límite de peticiones por ventana.
func (l *Limiter) Max() int { return l.max }

// evictExpired elimina entradas con ventana vencida para acotar el mapa.
// Se llama con el mutex tomado.
func (l *Limiter) evictExpired(now time.Time) {
	for id, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, id)
		}
	}
}

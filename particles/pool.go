package particles

// Pool manages reusable particle objects. Switching modes reuses the same
// objects so the field never allocates after startup.
type Pool struct {
	Pool        []*Particle
	ActiveCount int
	MaxSize     int
}

// NewPool creates a new particle pool with pre-allocated objects.
func NewPool(maxSize int) *Pool {
	pool := &Pool{
		Pool:    make([]*Particle, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Particle{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available particle from the pool.
func (p *Pool) Acquire() *Particle {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	pt := p.Pool[p.ActiveCount]
	pt.PoolIndex = p.ActiveCount
	p.ActiveCount++
	return pt
}

// Clear resets the pool, marking all objects as inactive.
func (p *Pool) Clear() {
	p.ActiveCount = 0
}

// Active returns the live particles. The slice aliases the pool.
func (p *Pool) Active() []*Particle {
	return p.Pool[:p.ActiveCount]
}

// ForEach iterates over active objects in pool order.
func (p *Pool) ForEach(fn func(*Particle, int)) {
	for i := 0; i < p.ActiveCount; i++ {
		fn(p.Pool[i], i)
	}
}

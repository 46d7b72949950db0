// Package deque keeps a bounded queue of recent estimation results backed by
// a ring array. The server hub records every completed estimation here so a
// client can replay the session history.
package deque

import "github.com/Andre-4949/y-plus-estimation/model"

type Deque struct {
	items    []model.Result
	head     int
	size     int
	capacity int
}

func New(capacity int) *Deque {
	if capacity < 1 {
		capacity = 1
	}
	return &Deque{
		items:    make([]model.Result, capacity),
		capacity: capacity,
	}
}

func (d *Deque) Size() int {
	return d.size
}

func (d *Deque) IsEmpty() bool {
	return d.size == 0
}

func (d *Deque) IsFull() bool {
	return d.size == d.capacity
}

// AddLast appends a result, evicting the oldest one when full.
func (d *Deque) AddLast(r model.Result) {
	if d.IsFull() {
		d.RemoveFirst()
	}
	d.items[(d.head+d.size)%d.capacity] = r
	d.size++
}

// RemoveFirst pops the oldest result.
func (d *Deque) RemoveFirst() (model.Result, bool) {
	if d.IsEmpty() {
		return model.Result{}, false
	}
	r := d.items[d.head]
	d.head = (d.head + 1) % d.capacity
	d.size--
	return r, true
}

// Traverse visits the stored results oldest first.
func (d *Deque) Traverse(f func(i int, r *model.Result)) {
	for i := 0; i < d.size; i++ {
		f(i, &d.items[(d.head+i)%d.capacity])
	}
}

// Snapshot copies the stored results oldest first.
func (d *Deque) Snapshot() []model.Result {
	out := make([]model.Result, 0, d.size)
	d.Traverse(func(_ int, r *model.Result) {
		out = append(out, *r)
	})
	return out
}

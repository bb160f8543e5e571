package tas

// Queue is the per-priority backing FIFO contract: a tail-drop store with
// enqueue, dequeue, peek, is-empty and size. The actual storage is treated
// as an external collaborator supplied by the surrounding traffic-control
// framework; Core depends only on this interface, and NewFIFO below is the
// default, self-contained implementation used when no host framework is
// wired in.
type Queue interface {
	// Enqueue appends item, returning false (without storing it) if the
	// queue is at capacity.
	Enqueue(item Item) bool
	// Dequeue removes and returns the head item, or (nil, false) if empty.
	Dequeue() (Item, bool)
	// Peek returns the head item without removing it, or (nil, false) if
	// empty.
	Peek() (Item, bool)
	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool
	// Len returns the current number of stored items.
	Len() int
}

// fifo is a fixed-capacity circular-buffer tail-drop FIFO: the default
// Queue implementation. It stores at most cap items without ever growing
// its backing array, unlike a naive append-and-reslice queue whose backing
// array keeps growing as items are dequeued off the front.
type fifo struct {
	items []Item
	head  int
	count int
}

// NewFIFO returns a Queue with the given capacity. A non-positive capacity
// is treated as zero (every Enqueue call tail-drops).
func NewFIFO(capacity int) Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &fifo{items: make([]Item, capacity)}
}

func (f *fifo) Enqueue(item Item) bool {
	if f.count >= len(f.items) {
		return false
	}
	f.items[(f.head+f.count)%len(f.items)] = item
	f.count++
	return true
}

func (f *fifo) Dequeue() (Item, bool) {
	if f.count == 0 {
		return nil, false
	}
	item := f.items[f.head]
	f.items[f.head] = nil
	f.head = (f.head + 1) % len(f.items)
	f.count--
	return item, true
}

func (f *fifo) Peek() (Item, bool) {
	if f.count == 0 {
		return nil, false
	}
	return f.items[f.head], true
}

func (f *fifo) IsEmpty() bool { return f.count == 0 }

func (f *fifo) Len() int { return f.count }

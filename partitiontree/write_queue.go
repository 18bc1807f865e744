package ptree

// nodeQueue is a growable ring buffer of node ids used as the FIFO for
// breadth-first range writes.
type nodeQueue struct {
	buf  []NodeID
	head int
	size int
}

func newNodeQueue(capacity int) *nodeQueue {
	if capacity < 4 {
		capacity = 4
	}
	return &nodeQueue{buf: make([]NodeID, capacity)}
}

func (q *nodeQueue) push(id NodeID) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = id
	q.size++
}

func (q *nodeQueue) pop() (NodeID, bool) {
	if q.size == 0 {
		return NoNode, false
	}
	id := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return id, true
}

func (q *nodeQueue) count() int {
	return q.size
}

func (q *nodeQueue) reset() {
	q.head, q.size = 0, 0
}

func (q *nodeQueue) grow() {
	buf := make([]NodeID, len(q.buf)*2)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}

package gomba

// Referee receives the outcomes of player contacts.
type Referee interface {
	SubmitKill(e Enemy)
	SubmitGameOver()
	SubmitJumpOverCredit()
}

type verdictKind int

const (
	verdictKill verdictKind = iota
	verdictGameOver
	verdictJumpOver
)

type verdict struct {
	kind  verdictKind
	enemy Enemy
}

// VerdictQueue collects verdicts during a tick so the coordinator, as the
// single writer of round state, applies them in submission order.
type VerdictQueue struct {
	pending []verdict
}

// NewVerdictQueue creates an empty queue.
func NewVerdictQueue() *VerdictQueue {
	return &VerdictQueue{}
}

func (q *VerdictQueue) SubmitKill(e Enemy) {
	q.pending = append(q.pending, verdict{kind: verdictKill, enemy: e})
}

func (q *VerdictQueue) SubmitGameOver() {
	q.pending = append(q.pending, verdict{kind: verdictGameOver})
}

func (q *VerdictQueue) SubmitJumpOverCredit() {
	q.pending = append(q.pending, verdict{kind: verdictJumpOver})
}

// Len returns the number of pending verdicts.
func (q *VerdictQueue) Len() int {
	return len(q.pending)
}

// Flush forwards every pending verdict to r and empties the queue.
func (q *VerdictQueue) Flush(r Referee) {
	pending := q.pending
	q.pending = nil
	for _, v := range pending {
		switch v.kind {
		case verdictKill:
			r.SubmitKill(v.enemy)
		case verdictGameOver:
			r.SubmitGameOver()
		case verdictJumpOver:
			r.SubmitJumpOverCredit()
		}
	}
}

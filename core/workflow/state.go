package workflow

// StateName identifies a workflow state.
type StateName string

const (
	StateDraft         StateName = "draft"
	StatePendingReview StateName = "pending_review"
	StatePublished     StateName = "published"
)

// String returns the state name.
func (n StateName) String() string { return string(n) }

// State is one step of the post workflow.
// Transitions return the next state, which may be the receiver itself.
// The set is closed: Draft, PendingReview and Published are the only variants.
type State interface {
	RequestReview() State
	Approve() State
	// Content projects the post payload visible in this state.
	Content(p *Post) string
	Name() StateName

	state()
}

// Draft is the initial state. Approving a draft does nothing.
type Draft struct{}

func (Draft) RequestReview() State { return PendingReview{} }
func (d Draft) Approve() State { return d }
func (Draft) Content(*Post) string { return "" }
func (Draft) Name() StateName { return StateDraft }
func (Draft) state() {}

// PendingReview waits for approval. Requesting review again does nothing.
type PendingReview struct{}

func (p PendingReview) RequestReview() State { return p }
func (PendingReview) Approve() State { return Published{} }
func (PendingReview) Content(*Post) string { return "" }
func (PendingReview) Name() StateName { return StatePendingReview }
func (PendingReview) state() {}

// Published is terminal and the only state that exposes content.
type Published struct{}

func (p Published) RequestReview() State { return p }
func (p Published) Approve() State { return p }
func (Published) Content(post *Post) string { return post.content.String() }
func (Published) Name() StateName { return StatePublished }
func (Published) state() {}

package game

// The three error families of the engine. A ValidationError means the
// command was issued at the wrong time or with bad arguments, a
// RuleViolation means the rules forbid an otherwise well-formed move,
// and a ConsistencyError means rehydration found a state the engine
// refuses to guess its way out of. None of them leave a partial
// mutation behind.

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

type RuleViolation struct {
	Reason string
}

func (e *RuleViolation) Error() string { return e.Reason }

type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string { return e.Reason }

var (
	ErrNoGame            = &ValidationError{Reason: "no game in progress"}
	ErrAlreadyInProgress = &ValidationError{Reason: "a game is already in progress"}
	ErrNotEnoughPlayers  = &RuleViolation{Reason: "not enough people are ready"}
	ErrWrongState        = &ValidationError{Reason: "that command is not available right now"}
	ErrNotYourTurn       = &ValidationError{Reason: "it is not your turn"}
	ErrNotAPlayer        = &ValidationError{Reason: "you are not part of this game"}
	ErrInsufficientFunds = &RuleViolation{Reason: "not enough money"}
	ErrBidTooLow         = &RuleViolation{Reason: "enter a bigger bid"}
	ErrNotMonopolyOwner  = &RuleViolation{Reason: "you need the full colour set to build"}
	ErrMaxHousesReached  = &RuleViolation{Reason: "nothing more can be built there"}
)

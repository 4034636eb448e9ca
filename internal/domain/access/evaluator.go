package access

import (
	"context"
	"fmt"

	"carelink-go/internal/domain/connection"
	"carelink-go/internal/domain/ids"
)

// ConnectionLookup is the slice of the connection registry the evaluator needs.
type ConnectionLookup interface {
	Exists(ctx context.Context, seniorID, familyMemberID string) (*connection.Connection, error)
}

// Recorder observes every authorization outcome.
type Recorder interface {
	RecordAccessDecision(category string, granted bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordAccessDecision(string, bool) {}

// Evaluator decides whether a requester may see a senior's data. requesterID
// must already be verified by the transport layer.
type Evaluator struct {
	connections ConnectionLookup
	recorder    Recorder
}

func NewEvaluator(connections ConnectionLookup, recorder Recorder) *Evaluator {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Evaluator{connections: connections, recorder: recorder}
}

// Evaluate resolves the relationship between requesterID and seniorID. It never
// fails for a missing or unaccepted connection, or for ids that are not
// UUIDs; those produce a zero Decision.
func (e *Evaluator) Evaluate(ctx context.Context, requesterID, seniorID string) (Decision, error) {
	if !ids.Valid(requesterID) || !ids.Valid(seniorID) {
		return Decision{}, nil
	}
	if requesterID == seniorID {
		return Decision{HasAccess: true, Self: true, Permissions: connection.FullPermissions()}, nil
	}

	conn, err := e.connections.Exists(ctx, seniorID, requesterID)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: lookup connection: %v", ErrUpstream, err)
	}
	if conn == nil || conn.Status != connection.StatusAccepted {
		return Decision{}, nil
	}

	return Decision{HasAccess: true, Permissions: conn.Permissions.Data()}, nil
}

// Authorize grants read access to category or returns ErrAccessDenied.
func (e *Evaluator) Authorize(ctx context.Context, requesterID, seniorID string, category Category) (Decision, error) {
	return e.authorize(ctx, requesterID, seniorID, category, Decision.Allows, "view")
}

// AuthorizeManage grants write access to category or returns ErrAccessDenied.
func (e *Evaluator) AuthorizeManage(ctx context.Context, requesterID, seniorID string, category Category) (Decision, error) {
	return e.authorize(ctx, requesterID, seniorID, category, Decision.AllowsManage, "manage")
}

func (e *Evaluator) authorize(ctx context.Context, requesterID, seniorID string, category Category, check func(Decision, Category) bool, mode string) (Decision, error) {
	if !category.Valid() {
		return Decision{}, ErrUnknownCategory
	}

	decision, err := e.Evaluate(ctx, requesterID, seniorID)
	if err != nil {
		return Decision{}, err
	}

	label := mode + ":" + string(category)
	if !check(decision, category) {
		e.recorder.RecordAccessDecision(label, false)
		return Decision{}, ErrAccessDenied
	}

	e.recorder.RecordAccessDecision(label, true)
	return decision, nil
}

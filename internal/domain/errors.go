package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors classifying why a deployment run failed
var (
	// ErrEnvironment is returned when no signer or network is available
	ErrEnvironment = errors.New("environment error")

	// ErrArtifactNotFound is returned when the named contract has no compiled artifact
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrSubmission is returned when the deployment transaction could not be sent
	ErrSubmission = errors.New("submission error")

	// ErrConfirmation is returned when the deployment was not confirmed on-chain
	ErrConfirmation = errors.New("confirmation error")

	// ErrIO is returned when the deployed address could not be persisted
	ErrIO = errors.New("io error")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")
)

// DeployStage names a step of the deployment flow
type DeployStage string

const (
	StageAcquireSigner   DeployStage = "acquire signer"
	StageResolveArtifact DeployStage = "resolve artifact"
	StageSubmit          DeployStage = "submit deployment"
	StageConfirm         DeployStage = "await confirmation"
	StagePersist         DeployStage = "persist address"
)

// DeployError is the single error type surfaced by a failed deployment run.
// errors.Is matches both the Kind sentinel and the wrapped cause.
type DeployError struct {
	Kind  error
	Stage DeployStage
	Err   error
}

func NewDeployError(kind error, stage DeployStage, err error) *DeployError {
	return &DeployError{Kind: kind, Stage: stage, Err: err}
}

func (e *DeployError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *DeployError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// ArtifactNotFoundErr reports a contract name with no matching artifact
type ArtifactNotFoundErr struct {
	Query       ContractQuery
	SearchDirs  []string
	Suggestions []string
}

func (e ArtifactNotFoundErr) Error() string {
	msg := fmt.Sprintf("no artifact for contract %q in %s", e.Query.String(), strings.Join(e.SearchDirs, ", "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e ArtifactNotFoundErr) Is(target error) bool {
	return target == ErrArtifactNotFound
}

// AmbiguousContractErr reports a contract name matching several artifacts
type AmbiguousContractErr struct {
	Query   ContractQuery
	Matches []string // "source:name" references
}

func (e AmbiguousContractErr) Error() string {
	sorted := make([]string, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Strings(sorted)

	var suggestions []string
	for _, ref := range sorted {
		suggestions = append(suggestions, "  - "+ref)
	}

	return fmt.Sprintf("multiple artifacts found matching %s - use path:contract format to disambiguate:\n%s",
		e.Query.String(), strings.Join(suggestions, "\n"))
}

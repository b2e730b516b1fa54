package externapi

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/devicelab-dev/uicore/pkg/model"
)

// Server wraps a Dispatcher with the ApiTransact wire envelope: string in,
// string out, JSON value arrays underneath. Grounded in extern_api.cpp's
// free-standing ApiTransact function, wrapped in a struct here so tests can
// build independent instances instead of sharing a process-wide singleton.
type Server struct {
	Dispatcher *Dispatcher
}

// NewServer builds a Server around a fresh Dispatcher.
func NewServer() *Server {
	return &Server{Dispatcher: NewDispatcher()}
}

// SetLogger overrides the underlying Dispatcher's diagnostic logger.
func (s *Server) SetLogger(l *log.Logger) {
	s.Dispatcher.SetLogger(l)
}

type transactResult struct {
	UpdatedCaller *model.Value   `json:"updatedCaller,omitempty"`
	ResultValues  []model.Value  `json:"resultValues,omitempty"`
	Exception     *exceptionInfo `json:"exception,omitempty"`
}

type exceptionInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ApiTransact parses callerStr as a single Value and paramsStr as a Value
// array, dispatches funcStr, and serializes the response envelope. It never
// returns a Go error: every failure mode is folded into the envelope's
// exception field, matching the original's "no exceptions past the
// boundary" policy.
func (s *Server) ApiTransact(funcStr, callerStr, paramsStr string) string {
	s.Dispatcher.resetUntrackedError()

	var caller model.Value
	var params []model.Value
	var callErr *model.ApiCallErr
	parsed := false

	if err := json.Unmarshal([]byte(callerStr), &caller); err != nil {
		callErr = model.NewApiCallErr(model.InternalError, fmt.Sprintf("Convert transaction parameters failed: %v", err))
	} else if err := json.Unmarshal([]byte(paramsStr), &params); err != nil {
		callErr = model.NewApiCallErr(model.InternalError, fmt.Sprintf("Convert transaction parameters failed: %v", err))
	} else {
		parsed = true
	}

	result := []model.Value{}
	if callErr == nil {
		var dispatched []model.Value
		dispatched, callErr = s.Dispatcher.Call(funcStr, &caller, params)
		if dispatched != nil {
			result = dispatched
		}
	}

	untracked, untrackedMsg := s.Dispatcher.takeUntrackedError()
	switch {
	case callErr == nil && untracked != model.NoError:
		callErr = model.NewApiCallErr(untracked, untrackedMsg)
	case callErr != nil && untracked > callErr.Code:
		callErr = model.NewApiCallErr(untracked, untrackedMsg)
	}

	var resp transactResult
	if parsed {
		resp.UpdatedCaller = &caller
		resp.ResultValues = result
	}
	if !model.IsNoError(callErr) {
		resp.Exception = &exceptionInfo{Code: callErr.Code.String(), Message: callErr.Message}
		s.Dispatcher.log.Printf("ApiTransact %q failed: %s: %s", funcStr, callErr.Code, callErr.Message)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"exception":{"code":"%s","message":"failed to serialize transaction result: %s"}}`,
			model.InternalError.String(), err.Error())
	}
	return string(data)
}

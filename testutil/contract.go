package testutil

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Position is a canned position returned by a ContractServer
type Position struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}

// Response is a canned reply to one query kind
type Response struct {
	Status int
	Body   string
}

// ContractServer serves wasm REST smart queries for a single contract from
// canned responses keyed by the query message name, e.g. "user_debts".
type ContractServer struct {
	server   *httptest.Server
	contract string

	mu        sync.Mutex
	responses map[string]Response
	queries   []string
}

// NewContractServer starts a server. Call Close when done.
func NewContractServer(contract string) *ContractServer {
	s := &ContractServer{
		contract:  contract,
		responses: make(map[string]Response),
	}

	r := chi.NewRouter()
	r.Get("/cosmwasm/wasm/v1/contract/{contract}/smart/{query}", s.handleSmartQuery)
	s.server = httptest.NewServer(r)

	return s
}

// APIAddress is the REST endpoint of the server
func (s *ContractServer) APIAddress() string {
	return s.server.URL
}

// Close shuts the server down
func (s *ContractServer) Close() {
	s.server.Close()
}

// SetPositions replies to kind with a 200 and the given positions
func (s *ContractServer) SetPositions(kind string, positions ...Position) {
	if positions == nil {
		positions = []Position{}
	}
	body, err := json.Marshal(map[string]interface{}{"data": positions})
	if err != nil {
		panic(err)
	}
	s.SetResponse(kind, http.StatusOK, string(body))
}

// SetResponse replies to kind with a raw status and body
func (s *ContractServer) SetResponse(kind string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[kind] = Response{Status: status, Body: body}
}

// Queries returns the decoded query messages received so far, in order
func (s *ContractServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *ContractServer) handleSmartQuery(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "contract") != s.contract {
		writeError(w, http.StatusNotFound, "no such contract")
		return
	}

	msg, err := base64.URLEncoding.DecodeString(chi.URLParam(r, "query"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var query map[string]json.RawMessage
	if err := json.Unmarshal(msg, &query); err != nil || len(query) != 1 {
		writeError(w, http.StatusBadRequest, "invalid query message")
		return
	}

	s.mu.Lock()
	s.queries = append(s.queries, string(msg))
	var res Response
	var found bool
	for kind := range query {
		res, found = s.responses[kind]
	}
	s.mu.Unlock()

	if !found {
		writeError(w, http.StatusBadRequest, "unknown query")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	fmt.Fprint(w, res.Body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": status, "message": msg})
}

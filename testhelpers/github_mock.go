package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
)

// MockMerge records one call to the merge endpoint
type MockMerge struct {
	Number  int
	Method  string
	Message string
}

// MockGitHub is an in-memory stand-in for the GitHub pull request endpoints.
// Like GitHub, the list and create endpoints never report mergeability; a
// pull request only reports it when fetched individually.
type MockGitHub struct {
	Owner string
	Repo  string

	// MergeabilityDelay is how many individual fetches of a newly created
	// pull request report mergeability as not yet computed
	MergeabilityDelay int

	mu      sync.Mutex
	server  *httptest.Server
	prs     map[int]*github.PullRequest
	reviews map[int][]*github.PullRequestReview
	pending map[int]int
	gets    map[int]int
	merges  []MockMerge
	next    int
}

// NewMockGitHub starts a mock server for owner/repo that is closed when the test ends
func NewMockGitHub(t *testing.T) *MockGitHub {
	t.Helper()
	m := &MockGitHub{
		Owner:   "owner",
		Repo:    "repo",
		prs:     make(map[int]*github.PullRequest),
		reviews: make(map[int][]*github.PullRequestReview),
		pending: make(map[int]int),
		gets:    make(map[int]int),
		next:    1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/{owner}/{repo}/pulls", m.handleList)
	mux.HandleFunc("POST /repos/{owner}/{repo}/pulls", m.handleCreate)
	mux.HandleFunc("GET /repos/{owner}/{repo}/pulls/{number}", m.handleGet)
	mux.HandleFunc("PUT /repos/{owner}/{repo}/pulls/{number}/merge", m.handleMerge)
	mux.HandleFunc("GET /repos/{owner}/{repo}/pulls/{number}/reviews", m.handleReviews)

	m.server = httptest.NewServer(mux)
	t.Cleanup(m.server.Close)
	return m
}

// Client returns a go-github client pointed at the mock server
func (m *MockGitHub) Client() *github.Client {
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(m.server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL
	return client
}

// AddPR stores an open, mergeable pull request for head onto base and
// returns its number. mutate may adjust it before it is stored.
func (m *MockGitHub) AddPR(head, base string, mutate func(pr *github.PullRequest)) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr := m.newPR(head, base, "PR for "+head, "")
	if mutate != nil {
		mutate(pr)
	}
	m.prs[pr.GetNumber()] = pr
	return pr.GetNumber()
}

// Update changes a stored pull request
func (m *MockGitHub) Update(number int, mutate func(pr *github.PullRequest)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pr, ok := m.prs[number]; ok {
		mutate(pr)
	}
}

// AddReview appends a review with state (APPROVED, CHANGES_REQUESTED, ...)
func (m *MockGitHub) AddReview(number int, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[number] = append(m.reviews[number], &github.PullRequestReview{
		ID:    github.Int64(int64(len(m.reviews[number]) + 1)),
		State: github.String(state),
	})
}

// DelayMergeability makes the next fetches of number report mergeability as unknown
func (m *MockGitHub) DelayMergeability(number, fetches int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[number] = fetches
}

// PR returns a copy of a stored pull request
func (m *MockGitHub) PR(number int) *github.PullRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pr, ok := m.prs[number]; ok {
		return copyPR(pr)
	}
	return nil
}

// GetCount returns how often number was fetched individually
func (m *MockGitHub) GetCount(number int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets[number]
}

// Merges returns the recorded merge calls
func (m *MockGitHub) Merges() []MockMerge {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockMerge(nil), m.merges...)
}

func (m *MockGitHub) newPR(head, base, title, body string) *github.PullRequest {
	number := m.next
	m.next++
	return &github.PullRequest{
		Number:         github.Int(number),
		Title:          github.String(title),
		Body:           github.String(body),
		State:          github.String("open"),
		Draft:          github.Bool(false),
		Mergeable:      github.Bool(true),
		MergeableState: github.String("clean"),
		Head:           &github.PullRequestBranch{Ref: github.String(head), Label: github.String(m.Owner + ":" + head)},
		Base:           &github.PullRequestBranch{Ref: github.String(base), Label: github.String(m.Owner + ":" + base)},
		HTMLURL:        github.String(fmt.Sprintf("https://github.com/%s/%s/pull/%d", m.Owner, m.Repo, number)),
	}
}

func (m *MockGitHub) handleList(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	head := strings.TrimPrefix(r.URL.Query().Get("head"), m.Owner+":")
	state := r.URL.Query().Get("state")

	numbers := make([]int, 0, len(m.prs))
	for n := range m.prs {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	out := []*github.PullRequest{}
	for _, n := range numbers {
		pr := m.prs[n]
		if head != "" && pr.GetHead().GetRef() != head {
			continue
		}
		if state != "" && state != "all" && pr.GetState() != state {
			continue
		}
		out = append(out, withoutMergeability(pr))
	}
	writeJSON(w, http.StatusOK, out)
}

func (m *MockGitHub) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req github.NewPullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	pr := m.newPR(req.GetHead(), req.GetBase(), req.GetTitle(), req.GetBody())
	m.prs[pr.GetNumber()] = pr
	m.pending[pr.GetNumber()] = m.MergeabilityDelay
	writeJSON(w, http.StatusCreated, withoutMergeability(pr))
}

func (m *MockGitHub) handleGet(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.PathValue("number"))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets[number]++
	pr, ok := m.prs[number]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	if m.pending[number] > 0 {
		m.pending[number]--
		writeJSON(w, http.StatusOK, withoutMergeability(pr))
		return
	}
	writeJSON(w, http.StatusOK, pr)
}

func (m *MockGitHub) handleMerge(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.PathValue("number"))
	var req struct {
		CommitMessage string `json:"commit_message"`
		MergeMethod   string `json:"merge_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.prs[number]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	m.merges = append(m.merges, MockMerge{Number: number, Method: req.MergeMethod, Message: req.CommitMessage})
	if !pr.GetMergeable() || pr.GetDraft() || pr.GetState() != "open" {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Pull Request is not mergeable"})
		return
	}

	now := github.Timestamp{Time: time.Now()}
	pr.State = github.String("closed")
	pr.Merged = github.Bool(true)
	pr.MergedAt = &now
	pr.ClosedAt = &now
	writeJSON(w, http.StatusOK, &github.PullRequestMergeResult{
		Merged:  github.Bool(true),
		SHA:     github.String("0123456789abcdef"),
		Message: github.String("Pull Request successfully merged"),
	})
}

func (m *MockGitHub) handleReviews(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.PathValue("number"))

	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.reviews[number]
	if out == nil {
		out = []*github.PullRequestReview{}
	}
	writeJSON(w, http.StatusOK, out)
}

func copyPR(pr *github.PullRequest) *github.PullRequest {
	c := *pr
	return &c
}

func withoutMergeability(pr *github.PullRequest) *github.PullRequest {
	c := copyPR(pr)
	c.Mergeable = nil
	c.MergeableState = nil
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

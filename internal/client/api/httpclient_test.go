package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coachdesk/coachdesk/internal/client/models"
	"github.com/coachdesk/coachdesk/internal/common"
	"github.com/coachdesk/coachdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, testLogger())
}

func TestLogin_NestedShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, pathLogin, r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer token")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"payload":{"user":{"id":"u1","email":"a@b.com","role":"trainer"}},"token":"t1"}`)
	})

	res, err := c.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	require.NotNil(t, res.User)
	require.Equal(t, "u1", res.User.ID)
	require.Equal(t, "t1", res.Token)
}

func TestLogin_MalformedResponseDoesNotCrash(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	res, err := c.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	require.Nil(t, res.User)
	require.Empty(t, res.Token)
}

func TestBearerToken_AttachedWhenPresent(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		io.WriteString(w, `{"users":[],"currentPage":1,"totalPages":0,"totalUsers":0}`)
	})
	c.SetToken("tok-123")

	_, err := c.ListUsers(context.Background(), models.UserQuery{Page: 1})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.NotEmpty(t, gotReqID)

	c.ClearToken()
	_, err = c.ListUsers(context.Background(), models.UserQuery{Page: 1})
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestListUsers_QueryAndPagedDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "1", q.Get("page"))
		require.Equal(t, "trainer", q.Get("role"))
		require.Equal(t, "ann", q.Get("search"))
		io.WriteString(w, `{"users":[{"id":"u1"},{"id":"u2"}],"currentPage":1,"totalPages":3,"totalUsers":25}`)
	})

	page, err := c.ListUsers(context.Background(), models.UserQuery{Page: 1, Role: models.RoleTrainer, Search: "ann"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, 1, page.CurrentPage)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 25, page.TotalCount)
}

func TestResponseError_MessagePassthroughAndFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "with-message") {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"message":"email already taken"}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `garbage`)
	})

	err := c.do(context.Background(), http.MethodGet, "/with-message", nil, nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "email already taken", apiErr.Message)

	err = c.do(context.Background(), http.MethodGet, "/no-message", nil, nil, nil)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, fallbackMessage, apiErr.Message)
}

func TestResponseError_SentinelMapping(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/unauthorized":
			w.WriteHeader(http.StatusUnauthorized)
		case "/down":
			w.WriteHeader(http.StatusBadGateway)
		}
	})

	err := c.do(context.Background(), http.MethodGet, "/unauthorized", nil, nil, nil)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	err = c.do(context.Background(), http.MethodGet, "/down", nil, nil, nil)
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing is listening anymore

	c := New(url, time.Second, testLogger())
	err := c.DeleteUser(context.Background(), "u1")
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestNoBaseURL(t *testing.T) {
	c := New("", time.Second, testLogger())
	_, err := c.ListVideos(context.Background(), 1)
	require.ErrorIs(t, err, ErrNoBaseURL)
}

func TestUploadCertificate_ProgressAndMultipart(t *testing.T) {
	var gotName string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("certificate")
		require.NoError(t, err)
		defer f.Close()
		gotName = hdr.Filename
		gotBody, err = io.ReadAll(f)
		require.NoError(t, err)
		w.WriteHeader(http.StatusCreated)
	})

	var events []int
	payload := strings.Repeat("certificate-bytes ", 1024)
	err := c.UploadCertificate(context.Background(), "cert.pdf", strings.NewReader(payload), func(p int) {
		events = append(events, p)
	})
	require.NoError(t, err)
	require.Equal(t, "cert.pdf", gotName)
	require.Equal(t, payload, string(gotBody))

	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		require.GreaterOrEqual(t, events[i], events[i-1], "progress must be non-decreasing")
	}
	require.Equal(t, 100, events[len(events)-1])
}

func TestUploadVideo_FieldsForwarded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Squat basics", r.FormValue("title"))
		require.Equal(t, "Form walkthrough", r.FormValue("description"))
		_, _, err := r.FormFile("video")
		require.NoError(t, err)
		w.WriteHeader(http.StatusCreated)
	})

	meta := models.VideoMeta{Title: "Squat basics", Description: "Form walkthrough"}
	err := c.UploadVideo(context.Background(), meta, "squat.mp4", strings.NewReader("mp4-bytes"), nil)
	require.NoError(t, err)
}

func TestModerationPaths(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		io.WriteString(w, `{}`)
	})

	_, err := c.ListReports(context.Background(), models.ReportPosts, 1)
	require.NoError(t, err)
	require.NoError(t, c.DismissReport(context.Background(), models.ReportPosts, "r1"))
	require.NoError(t, c.DeleteReported(context.Background(), models.ReportUsers, "u9"))

	require.Equal(t, []string{
		"GET /api/admin/reports/posts",
		"POST /api/admin/reports/posts/r1/dismiss",
		"DELETE /api/admin/reports/users/entities/u9",
	}, paths)
}

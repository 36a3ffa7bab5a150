package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk/internal/client/models"
	"github.com/coachdesk/coachdesk/internal/common"
	"github.com/coachdesk/coachdesk/internal/logging"
)

const (
	pathLogin                = "/api/auth/login"
	pathPasswordReset        = "/api/auth/password-reset"
	pathPasswordResetConfirm = "/api/auth/password-reset/confirm"
	pathUsers                = "/api/admin/users"
	pathTrainees             = "/api/trainees"
	pathCertificates         = "/api/certificates"
	pathVideos               = "/api/videos"
	pathReviews              = "/api/reviews"
	pathVerifications        = "/api/admin/verifications"
	pathReports              = "/api/admin/reports"
)

// HTTPClient is the concrete API implementation over net/http. It holds the
// current bearer token; SetToken/ClearToken are safe to call concurrently
// with in-flight requests.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// New builds an HTTPClient against baseURL. An empty baseURL is a
// configuration error: it is logged, the client is still constructed, and
// every request then fails with ErrNoBaseURL.
func New(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if baseURL == "" {
		log.Error(context.Background(), "backend base URL is not configured; all requests will fail")
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// prepare sets the headers every request carries. The bearer header is
// attached only when a token is present; login, signup, and password-reset
// requests stay anonymous because no token exists yet.
func (c *HTTPClient) prepare(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.currentToken(); tok != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+tok)
	}
}

// do performs one JSON round trip. body and out may be nil. Non-2xx
// responses become *Error with the server message passed through verbatim;
// transport failures match common.ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.baseURL == "" {
		return ErrNoBaseURL
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.prepare(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// responseError turns a non-2xx response into *Error. The server message is
// surfaced verbatim when the body carries one; otherwise a fixed fallback.
func (c *HTTPClient) responseError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	msg := fallbackMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}

// upload performs one multipart round trip, streaming the body through a
// progress reader so onProgress observes 0..100 while bytes hit the wire.
func (c *HTTPClient) upload(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, onProgress func(int)) error {
	if c.baseURL == "" {
		return ErrNoBaseURL
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("encode field %s: %w", k, err)
		}
	}
	fw, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		return fmt.Errorf("encode file part: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	total := int64(buf.Len())
	body := newProgressReader(&buf, total, onProgress)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.prepare(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.responseError(resp)
	}
	return nil
}

// ---- session ----

// loginResponse is the backend's documented (and fragile) nested login
// shape. Either field may be absent; decoding stays lenient so a malformed
// response degrades to an unauthenticated session instead of a panic.
type loginResponse struct {
	Payload struct {
		User *models.User `json:"user"`
	} `json:"payload"`
	Token string `json:"token"`
}

func (r loginResponse) result() models.AuthResult {
	return models.AuthResult{User: r.Payload.User, Token: r.Token}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	var resp loginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, pathLogin, nil, body, &resp); err != nil {
		return models.AuthResult{}, err
	}
	return resp.result(), nil
}

func (c *HTTPClient) Signup(ctx context.Context, path string, data models.SignupData) (models.AuthResult, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, path, nil, data, &resp); err != nil {
		return models.AuthResult{}, err
	}
	return resp.result(), nil
}

func (c *HTTPClient) Profile(ctx context.Context, path string) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("%w: profile response carried no user", common.ErrInternal)
	}
	return resp.User, nil
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, pathPasswordReset, nil, map[string]string{"email": email}, nil)
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "password": newPassword}
	return c.do(ctx, http.MethodPost, pathPasswordResetConfirm, nil, body, nil)
}

// ---- admin users ----

func (c *HTTPClient) ListUsers(ctx context.Context, q models.UserQuery) (models.Page[models.User], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	if q.Role != "" {
		query.Set("role", string(q.Role))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}

	var resp struct {
		Users       []models.User `json:"users"`
		CurrentPage int           `json:"currentPage"`
		TotalPages  int           `json:"totalPages"`
		TotalUsers  int           `json:"totalUsers"`
	}
	if err := c.do(ctx, http.MethodGet, pathUsers, query, nil, &resp); err != nil {
		return models.Page[models.User]{}, err
	}
	return models.Page[models.User]{
		Items:       resp.Users,
		CurrentPage: resp.CurrentPage,
		TotalPages:  resp.TotalPages,
		TotalCount:  resp.TotalUsers,
	}, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathUsers+"/"+url.PathEscape(id), nil, nil, nil)
}

func (c *HTTPClient) UpdateUserRole(ctx context.Context, id string, role models.Role) error {
	body := map[string]string{"role": string(role)}
	return c.do(ctx, http.MethodPatch, pathUsers+"/"+url.PathEscape(id)+"/role", nil, body, nil)
}

// ---- trainees ----

func (c *HTTPClient) ListTrainees(ctx context.Context, page int) (models.Page[models.Trainee], error) {
	query := url.Values{"page": []string{strconv.Itoa(page)}}

	var resp struct {
		Trainees      []models.Trainee `json:"trainees"`
		CurrentPage   int              `json:"currentPage"`
		TotalPages    int              `json:"totalPages"`
		TotalTrainees int              `json:"totalTrainees"`
	}
	if err := c.do(ctx, http.MethodGet, pathTrainees, query, nil, &resp); err != nil {
		return models.Page[models.Trainee]{}, err
	}
	return models.Page[models.Trainee]{
		Items:       resp.Trainees,
		CurrentPage: resp.CurrentPage,
		TotalPages:  resp.TotalPages,
		TotalCount:  resp.TotalTrainees,
	}, nil
}

func (c *HTTPClient) AddTrainee(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, pathTrainees, nil, map[string]string{"email": email}, nil)
}

func (c *HTTPClient) RemoveTrainee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathTrainees+"/"+url.PathEscape(id), nil, nil, nil)
}

func (c *HTTPClient) ListCertificates(ctx context.Context) ([]models.Document, error) {
	var resp struct {
		Certificates []models.Document `json:"certificates"`
	}
	if err := c.do(ctx, http.MethodGet, pathCertificates, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Certificates, nil
}

func (c *HTTPClient) UploadCertificate(ctx context.Context, name string, file io.Reader, onProgress func(int)) error {
	return c.upload(ctx, pathCertificates, nil, "certificate", name, file, onProgress)
}

// ---- videos ----

func (c *HTTPClient) ListVideos(ctx context.Context, page int) (models.Page[models.Video], error) {
	query := url.Values{"page": []string{strconv.Itoa(page)}}

	var resp struct {
		Videos      []models.Video `json:"videos"`
		CurrentPage int            `json:"currentPage"`
		TotalPages  int            `json:"totalPages"`
		TotalVideos int            `json:"totalVideos"`
	}
	if err := c.do(ctx, http.MethodGet, pathVideos, query, nil, &resp); err != nil {
		return models.Page[models.Video]{}, err
	}
	return models.Page[models.Video]{
		Items:       resp.Videos,
		CurrentPage: resp.CurrentPage,
		TotalPages:  resp.TotalPages,
		TotalCount:  resp.TotalVideos,
	}, nil
}

func (c *HTTPClient) UploadVideo(ctx context.Context, meta models.VideoMeta, name string, file io.Reader, onProgress func(int)) error {
	fields := map[string]string{"title": meta.Title, "description": meta.Description}
	return c.upload(ctx, pathVideos, fields, "video", name, file, onProgress)
}

func (c *HTTPClient) DeleteVideo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathVideos+"/"+url.PathEscape(id), nil, nil, nil)
}

// ---- reviews ----

func (c *HTTPClient) ListReviews(ctx context.Context, trainerID string, page int) (models.Page[models.Review], error) {
	query := url.Values{
		"trainerId": []string{trainerID},
		"page":      []string{strconv.Itoa(page)},
	}

	var resp struct {
		Reviews      []models.Review `json:"reviews"`
		CurrentPage  int             `json:"currentPage"`
		TotalPages   int             `json:"totalPages"`
		TotalReviews int             `json:"totalReviews"`
	}
	if err := c.do(ctx, http.MethodGet, pathReviews, query, nil, &resp); err != nil {
		return models.Page[models.Review]{}, err
	}
	return models.Page[models.Review]{
		Items:       resp.Reviews,
		CurrentPage: resp.CurrentPage,
		TotalPages:  resp.TotalPages,
		TotalCount:  resp.TotalReviews,
	}, nil
}

func (c *HTTPClient) SubmitReview(ctx context.Context, review models.Review) error {
	return c.do(ctx, http.MethodPost, pathReviews, nil, review, nil)
}

func (c *HTTPClient) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathReviews+"/"+url.PathEscape(id), nil, nil, nil)
}

// ---- verification workflow ----

func (c *HTTPClient) ListVerifications(ctx context.Context, page int) (models.Page[models.VerificationRecord], error) {
	query := url.Values{"page": []string{strconv.Itoa(page)}}

	var resp struct {
		Verifications []models.VerificationRecord `json:"verifications"`
		CurrentPage   int                         `json:"currentPage"`
		TotalPages    int                         `json:"totalPages"`
		TotalCount    int                         `json:"totalCount"`
	}
	if err := c.do(ctx, http.MethodGet, pathVerifications, query, nil, &resp); err != nil {
		return models.Page[models.VerificationRecord]{}, err
	}
	return models.Page[models.VerificationRecord]{
		Items:       resp.Verifications,
		CurrentPage: resp.CurrentPage,
		TotalPages:  resp.TotalPages,
		TotalCount:  resp.TotalCount,
	}, nil
}

func (c *HTTPClient) UpdateVerificationStatus(ctx context.Context, userID string, status models.VerificationStatus, reason string) error {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["reason"] = reason
	}
	return c.do(ctx, http.MethodPatch, pathVerifications+"/"+url.PathEscape(userID), nil, body, nil)
}

func (c *HTTPClient) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	var resp struct {
		Notes []models.Note `json:"notes"`
	}
	path := pathUsers + "/" + url.PathEscape(userID) + "/notes"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (c *HTTPClient) AddNote(ctx context.Context, userID, text string) error {
	path := pathUsers + "/" + url.PathEscape(userID) + "/notes"
	return c.do(ctx, http.MethodPost, path, nil, map[string]string{"note": text}, nil)
}

// ---- moderation ----

func (c *HTTPClient) ListReports(ctx context.Context, kind models.ReportKind, page int) (models.Page[models.ReportRecord], error) {
	query := url.Values{"page": []string{strconv.Itoa(page)}}

	var resp struct {
		Reports      []models.ReportRecord `json:"reports"`
		CurrentPage  int                   `json:"currentPage"`
		TotalPages   int                   `json:"totalPages"`
		TotalReports int                   `json:"totalReports"`
	}
	path := pathReports + "/" + url.PathEscape(string(kind))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return models.Page[models.ReportRecord]{}, err
	}
	return models.Page[models.ReportRecord]{
		Items:       resp.Reports,
		CurrentPage: resp.CurrentPage,
		TotalPages:  resp.TotalPages,
		TotalCount:  resp.TotalReports,
	}, nil
}

func (c *HTTPClient) DismissReport(ctx context.Context, kind models.ReportKind, reportID string) error {
	path := pathReports + "/" + url.PathEscape(string(kind)) + "/" + url.PathEscape(reportID) + "/dismiss"
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

func (c *HTTPClient) DeleteReported(ctx context.Context, kind models.ReportKind, entityID string) error {
	path := pathReports + "/" + url.PathEscape(string(kind)) + "/entities/" + url.PathEscape(entityID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

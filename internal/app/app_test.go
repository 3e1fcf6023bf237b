package app

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sitebuilder/internal/config"
	"sitebuilder/internal/domain/resume"
	"sitebuilder/internal/infrastructure/cache"
	"sitebuilder/internal/infrastructure/llm"
	"sitebuilder/internal/infrastructure/upload"
	"sitebuilder/internal/pkg/jwt"
	"sitebuilder/internal/repository"
	"sitebuilder/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdmin = "admin1@yourdomain.com"

func newTestApp(t *testing.T, adminOpen bool) *fiber.App {
	t.Helper()

	logger := zerolog.Nop()
	storage, err := upload.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	hub := ws.NewHub(logger)

	c := &Container{
		Config: config.Config{
			App:   config.AppConfig{AppName: "sitebuilder-test", CORSOrigins: []string{"*"}, BodyLimit: 4 << 20},
			Admin: config.AdminConfig{Whitelist: []string{testAdmin}, Open: adminOpen},
		},
		Logger:    logger,
		Store:     repository.NewMemoryBackedStore(),
		Cache:     cache.NewRedis(config.RedisConfig{}, logger),
		Generator: llm.StubGenerator{},
		Storage:   storage,
		JWT:       jwt.NewHMACService("test-secret", "sitebuilder", time.Hour),
		Parser:    resume.NewParser(resume.DefaultVocabulary()),
		Scorer:    resume.NewScorer(resume.DefaultWeights()),
		Hub:       hub,
		Notifier:  ws.NewNotifier(hub),
	}
	return New(c).Fiber
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(t, app, req)
}

func doMultipart(t *testing.T, app *fiber.App, path string, fields map[string]string, fileName, fileBody string) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("resume", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(fileBody))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func decodeMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out), string(b))
	return out
}

func decodeList(t *testing.T, b []byte) []any {
	t.Helper()
	var out []any
	require.NoError(t, json.Unmarshal(b, &out), string(b))
	return out
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, b := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{"email": testAdmin, "password": "x"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	token, _ := decodeMap(t, b)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRootAndHealth(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doJSON(t, app, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"message": "AI Website Builder Backend Running", "openai": false}, decodeMap(t, b))

	resp, b = doJSON(t, app, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, b)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disabled", body["cache"])
}

func TestPages(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doJSON(t, app, http.MethodGet, "/api/pages/home", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "Page not found"}, decodeMap(t, b))

	resp, b = doJSON(t, app, http.MethodPost, "/api/admin/pages/home", map[string]any{"title": "Acme"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	assert.Equal(t, map[string]any{"status": "ok", "page": map[string]any{"title": "Acme"}}, decodeMap(t, b))

	resp, b = doJSON(t, app, http.MethodGet, "/api/pages/home", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"title": "Acme"}, decodeMap(t, b))
}

func TestAdminContentRoutesNeedTokenWhenClosed(t *testing.T) {
	app := newTestApp(t, false)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/pages/home", map[string]any{"title": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/ensure_seed", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := login(t, app)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/admin/pages/home", map[string]any{"title": "x"}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJobs(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doJSON(t, app, http.MethodPost, "/api/jobs", map[string]any{"location": "Remote"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Provide 'title' in JSON body", decodeMap(t, b)["error"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/jobs", map[string]any{"id": "j1", "title": "Backend Engineer"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	body := decodeMap(t, b)
	assert.Equal(t, "job_added", body["status"])
	assert.Equal(t, "j1", body["job"].(map[string]any)["id"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/jobs", map[string]any{"id": "j1", "title": "Staff Engineer"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))

	resp, b = doJSON(t, app, http.MethodGet, "/api/jobs", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	jobs := decodeList(t, b)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Staff Engineer", jobs[0].(map[string]any)["title"])
}

func TestApplyAndAdminApplications(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doMultipart(t, app, "/api/apply", map[string]string{
		"name":           "Jane Doe",
		"email":          "jane@example.com",
		"job_title":      "Frontend Developer",
		"desired_skills": "python,react,docker",
	}, "cv.txt", "Jane Doe\njane@example.com\n5 years of experience in Python and React")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))

	body := decodeMap(t, b)
	assert.Equal(t, "received", body["status"])
	application := body["application"].(map[string]any)
	assert.Equal(t, 76.7, application["score"].(map[string]any)["match_percent"])
	assert.Equal(t, "Jane Doe", application["parsed"].(map[string]any)["name"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/applications", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, b = doJSON(t, app, http.MethodGet, "/api/admin/applications", nil, login(t, app))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeList(t, b), 1)
}

func TestResumeParse(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doMultipart(t, app, "/api/resume/parse", map[string]string{"desired_skills": "python"}, "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Attach resume file (key name 'resume')", decodeMap(t, b)["error"])

	resp, b = doMultipart(t, app, "/api/resume/parse", map[string]string{"desired_skills": "python, sql"}, "cv.txt", "Sam Lee\n2 years SQL")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	body := decodeMap(t, b)
	parsed := body["parsed"].(map[string]any)
	assert.Equal(t, "Sam Lee", parsed["name"])
	assert.Nil(t, parsed["email"])
	assert.Equal(t, []any{"sql"}, body["score"].(map[string]any)["matched_skills"])
}

func TestPortfolio(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doMultipart(t, app, "/api/portfolio/generate", nil, "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Attach resume file (form-data key 'resume')", decodeMap(t, b)["error"])

	resp, b = doMultipart(t, app, "/api/portfolio/generate", nil, "cv.txt", "Jane Doe\n3 years Docker")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	body := decodeMap(t, b)
	id, _ := body["portfolio_id"].(string)
	require.NotEmpty(t, id)
	assert.Contains(t, body["preview_html"], "<h1>Jane Doe</h1>")

	resp, b = doJSON(t, app, http.MethodGet, "/api/portfolio/"+id, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.True(t, strings.HasPrefix(string(b), "<html>"))

	resp, b = doJSON(t, app, http.MethodGet, "/api/portfolio/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", decodeMap(t, b)["error"])
}

func TestAssistantEndpoints(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doJSON(t, app, http.MethodPost, "/api/chatbot", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Provide 'question' in body", decodeMap(t, b)["error"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/chatbot", map[string]any{"question": "hi"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(decodeMap(t, b)["answer"].(string), "Demo-mode answer. Pages summary: "))

	resp, b = doJSON(t, app, http.MethodPost, "/api/ai/seo_analyze", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Provide 'content' in JSON body", decodeMap(t, b)["error"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/ai/seo_analyze", map[string]any{"content": "Cloud platform cloud"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"keywords": []any{"cloud", "platform"}, "score": float64(60), "meta": "Cloud platform cloud"}, decodeMap(t, b))

	resp, b = doJSON(t, app, http.MethodPost, "/api/ai/theme", map[string]any{}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "#0b72ff", decodeMap(t, b)["theme"].(map[string]any)["primary"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/ai/auto_build", map[string]any{"brief": "We build robots."}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Mastersolis Infotech", decodeMap(t, b)["generated"].(map[string]any)["name"])

	resp, b = doJSON(t, app, http.MethodGet, "/api/pages/about", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "We build robots.", decodeMap(t, b)["about"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/voice/text", map[string]any{"text": ""}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Provide 'text' to convert to speech-friendly form", decodeMap(t, b)["error"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/voice/text", map[string]any{"text": " a \n b "}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"speech_text": "a b"}, decodeMap(t, b))
}

func TestSeedAndBlog(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doJSON(t, app, http.MethodGet, "/api/posts/b1", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", decodeMap(t, b)["error"])

	resp, b = doJSON(t, app, http.MethodGet, "/api/admin/ensure_seed", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	body := decodeMap(t, b)
	assert.Equal(t, "seeded_or_exists", body["status"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, []any{"home", "about", "services", "projects"}, summary["pages"])
	assert.Equal(t, float64(3), summary["jobs"])
	assert.Equal(t, float64(2), summary["applications"])
	assert.Equal(t, float64(3), summary["blog_posts"])

	for _, path := range []string{"/api/posts", "/api/blog"} {
		resp, b = doJSON(t, app, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decodeList(t, b), 3)
	}

	resp, b = doJSON(t, app, http.MethodGet, "/api/posts/b1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "b1", decodeMap(t, b)["id"])
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{"email": testAdmin}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email and password required", decodeMap(t, b)["error"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{"email": "x@example.com", "password": "p"}, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "not allowed", decodeMap(t, b)["error"])

	assert.NotEmpty(t, login(t, app))
}

func TestContactAndAdminMessages(t *testing.T) {
	app := newTestApp(t, true)

	resp, b := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{"name": "Ann"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Provide 'message' in JSON body", decodeMap(t, b)["error"])

	resp, b = doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{"name": "Ann", "message": "Hello"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(b))
	body := decodeMap(t, b)
	assert.Equal(t, "received", body["status"])
	assert.NotEmpty(t, body["message_id"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/messages", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, b = doJSON(t, app, http.MethodGet, "/api/admin/messages", nil, login(t, app))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msgs := decodeList(t, b)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello", msgs[0].(map[string]any)["message"])
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}

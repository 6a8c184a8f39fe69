package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/neonprofile/internal/config"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
	service "github.com/sidereusnuntius/neonprofile/internal/service/impl"
	"github.com/sidereusnuntius/neonprofile/internal/state"
	"github.com/sidereusnuntius/neonprofile/internal/storage/memstore"
)

const sessionKey = "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4"

func newServer(t *testing.T) (*httptest.Server, *state.State) {
	t.Helper()
	cfg := config.Configuration{
		StaticDir:  "../../static",
		SessionKey: sessionKey,
	}
	st := state.New(context.Background(), cfg, memstore.New())
	h := New(&cfg, service.New(st), scs.NewCookieManager(sessionKey))

	router := chi.NewRouter()
	h.Mount(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, st
}

// client does not follow redirects, so tests can check them and carry cookies by hand.
var client = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func do(t *testing.T, method, target, contentType, body string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, target, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	content, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res, string(content)
}

func TestDashboard(t *testing.T) {
	srv, _ := newServer(t)

	res, body := do(t, http.MethodGet, srv.URL+"/", "", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}
	for _, want := range []string{"Amar Soni", "CSE Student &amp; Developer", "128", "420", "Quick Actions", `src="data:image/svg`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected dashboard to contain %q", want)
		}
	}
	if strings.Contains(body, "Save Changes") {
		t.Error("expected no edit form while viewing")
	}
}

func TestEditForm(t *testing.T) {
	srv, _ := newServer(t)

	res, body := do(t, http.MethodGet, srv.URL+EditRoute, "", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}
	if !strings.Contains(body, `name="name" value="Amar Soni"`) {
		t.Error("expected the edit form to be populated with the current name")
	}
	if strings.Contains(body, "Quick Actions") {
		t.Error("expected the quick actions card to be replaced by the edit form")
	}
}

func TestSaveProfile(t *testing.T) {
	cases := []struct {
		name     string
		form     url.Values
		expected func(p domain.Profile) domain.Profile
	}{
		{
			name: "full form",
			form: url.Values{"name": {"Jane"}, "title": {"Dev"}, "bio": {"Bio"}, "email": {"j@example.com"}, "location": {"Porto"}},
			expected: func(p domain.Profile) domain.Profile {
				p.Name, p.Title, p.Bio, p.Email, p.Location = "Jane", "Dev", "Bio", "j@example.com", "Porto"
				return p
			},
		},
		{
			name: "partial form keeps missing fields",
			form: url.Values{"bio": {"Only the bio"}},
			expected: func(p domain.Profile) domain.Profile {
				p.Bio = "Only the bio"
				return p
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv, st := newServer(t)
			before := st.Profiles.Current()

			res, _ := do(t, http.MethodPost, srv.URL+ProfileRoute, "application/x-www-form-urlencoded", c.form.Encode())
			if res.StatusCode != http.StatusSeeOther {
				t.Fatalf("expected status %d, got %d", http.StatusSeeOther, res.StatusCode)
			}

			if diff := cmp.Diff(c.expected(before), st.Profiles.Current()); diff != "" {
				t.Errorf("profile mismatch (-want +got):\n%s", diff)
			}

			_, body := do(t, http.MethodGet, srv.URL+"/", "", "", res.Cookies()...)
			if !strings.Contains(body, "Profile saved.") {
				t.Error("expected a flash message after saving")
			}
		})
	}
}

func TestCancelEdit(t *testing.T) {
	srv, st := newServer(t)
	before := st.Profiles.Current()

	form := url.Values{"name": {"Discarded"}}
	res, _ := do(t, http.MethodPost, srv.URL+CancelRoute, "application/x-www-form-urlencoded", form.Encode())
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, res.StatusCode)
	}
	if diff := cmp.Diff(before, st.Profiles.Current()); diff != "" {
		t.Errorf("cancel changed the profile (-want +got):\n%s", diff)
	}
}

func TestIncrementStat(t *testing.T) {
	srv, st := newServer(t)

	for i := 0; i < 3; i++ {
		res, _ := do(t, http.MethodPost, srv.URL+"/stats/followers", "", "")
		if res.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected status %d, got %d", http.StatusSeeOther, res.StatusCode)
		}
	}
	if got := st.Stats.Current(); got != (domain.Stats{Followers: 131, Projects: 6, Likes: 420}) {
		t.Errorf("unexpected stats %+v", got)
	}

	res, _ := do(t, http.MethodPost, srv.URL+"/stats/stars", "", "")
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, res.StatusCode)
	}
}

func TestAPI(t *testing.T) {
	srv, _ := newServer(t)

	res, body := do(t, http.MethodPatch, srv.URL+"/api/profile", "application/json", `{"name":"Amar S.","title":"Engineer"}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, res.StatusCode, body)
	}
	var p domain.Profile
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatal(err)
	}
	expected := domain.DefaultProfile()
	expected.Name, expected.Title = "Amar S.", "Engineer"
	if diff := cmp.Diff(expected, p); diff != "" {
		t.Errorf("patched profile mismatch (-want +got):\n%s", diff)
	}

	_, body = do(t, http.MethodGet, srv.URL+"/api/profile", "", "")
	var got domain.Profile
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("fetched profile mismatch (-want +got):\n%s", diff)
	}

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
		stats  *domain.Stats
	}{
		{"unknown field", http.MethodPatch, "/api/profile", `{"nickname":"x"}`, http.StatusBadRequest, nil},
		{"malformed body", http.MethodPatch, "/api/profile", `{`, http.StatusBadRequest, nil},
		{"increment likes", http.MethodPost, "/api/stats/likes", "", http.StatusOK, &domain.Stats{Followers: 128, Projects: 6, Likes: 421}},
		{"increment unknown", http.MethodPost, "/api/stats/stars", "", http.StatusBadRequest, nil},
		{"get stats", http.MethodGet, "/api/stats", "", http.StatusOK, &domain.Stats{Followers: 128, Projects: 6, Likes: 421}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, body := do(t, c.method, srv.URL+c.path, "application/json", c.body)
			if res.StatusCode != c.code {
				t.Fatalf("expected status %d, got %d: %s", c.code, res.StatusCode, body)
			}
			if c.stats == nil {
				return
			}
			var s domain.Stats
			if err := json.Unmarshal([]byte(body), &s); err != nil {
				t.Fatal(err)
			}
			if s != *c.stats {
				t.Errorf("expected %+v, got %+v", *c.stats, s)
			}
		})
	}
}

func TestAvatarAndStatic(t *testing.T) {
	srv, _ := newServer(t)

	res, body := do(t, http.MethodGet, srv.URL+AvatarRoute, "", "")
	if res.StatusCode != http.StatusOK || res.Header.Get("Content-Type") != "image/svg+xml" {
		t.Errorf("unexpected avatar response: %d %s", res.StatusCode, res.Header.Get("Content-Type"))
	}
	if !strings.Contains(body, ">AS</text>") {
		t.Error("expected the avatar to carry the profile initials")
	}

	res, _ = do(t, http.MethodGet, srv.URL+"/static/dashboard.css", "", "")
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status %d for the stylesheet, got %d", http.StatusOK, res.StatusCode)
	}
}

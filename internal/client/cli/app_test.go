package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/archeolens/archeolens-server/internal/api/http/context"
	"github.com/archeolens/archeolens-server/internal/api/http/router"
	"github.com/archeolens/archeolens-server/internal/client/api"
	"github.com/archeolens/archeolens-server/internal/client/session"
	"github.com/archeolens/archeolens-server/internal/identity"
	"github.com/archeolens/archeolens-server/internal/repository/memory"
	"github.com/archeolens/archeolens-server/internal/service"
	"github.com/archeolens/archeolens-server/internal/testutil"
	"github.com/archeolens/archeolens-server/internal/token"
)

type noopStorage struct{}

func (noopStorage) Upload(_ context.Context, _ string, reader io.Reader, _ int64, _ string) error {
	_, err := io.Copy(io.Discard, reader)
	return err
}

func (noopStorage) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://photos.test/" + key, nil
}

func (noopStorage) Delete(context.Context, string) error { return nil }

func (noopStorage) Exists(context.Context, string) (bool, error) { return false, nil }

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testutil.MakeNoopLogger()
	kv := memory.NewKVStore()
	provider := identity.NewProvider(memory.NewAccountStore(), token.NewJWT("cli-test-secret"), log)

	r := router.New(
		service.NewProfile(kv, provider, log),
		service.NewSite(kv, log),
		service.NewArtifact(kv, log),
		service.NewPhoto(noopStorage{}, log),
		provider,
		httpcontext.NewManager(),
		"/api/v1",
		log,
	)

	srv := httptest.NewServer(r.Register())
	t.Cleanup(srv.Close)
	return srv
}

func runApp(t *testing.T, srv *httptest.Server, input string) string {
	t.Helper()

	original := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("senha-123"), nil }
	t.Cleanup(func() { readPassword = original })

	sessions, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	var out bytes.Buffer
	app := NewApp(api.New(srv.URL+"/api/v1"), sessions, strings.NewReader(input), &out)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func TestApp_SignupLoginAndSites(t *testing.T) {
	srv := startTestServer(t)

	input := strings.Join([]string{
		"signup",
		"ana@example.com", // email; password comes from the stub
		"Ana Pesquisadora",
		"Arqueólogo",
		"35",
		"Cerâmica",
		"login",
		"ana@example.com",
		"addsite",
		"Serra da Capivara",
		"Parque nacional",
		"-8.68, -42.58",
		"Pinturas rupestres",
		"Piauí",
		"São Raimundo Nonato",
		"sites",
		"sites city nonato",
		"archaeologists",
		"logout",
		"exit",
	}, "\n") + "\n"

	output := runApp(t, srv, input)

	assert.Contains(t, output, "Conta criada para ana@example.com")
	assert.Contains(t, output, "Bem-vindo, Ana Pesquisadora!")
	assert.Contains(t, output, "Sítio cadastrado:")
	assert.Contains(t, output, "Serra da Capivara")
	assert.Contains(t, output, "São Raimundo Nonato")
	assert.Contains(t, output, "Ana Pesquisadora — Arqueólogo (Cerâmica)")
	assert.Contains(t, output, "Sessão encerrada.")
	assert.Contains(t, output, "Até logo!")
}

func TestApp_UnknownCommand(t *testing.T) {
	srv := startTestServer(t)

	output := runApp(t, srv, "abracadabra\nexit\n")
	assert.Contains(t, output, "Comando desconhecido: abracadabra")
}

func TestApp_SiteNotFound(t *testing.T) {
	srv := startTestServer(t)

	output := runApp(t, srv, "site nao-existe\nexit\n")
	assert.Contains(t, output, "Sítio não encontrado")
}

func TestApp_EOFExits(t *testing.T) {
	srv := startTestServer(t)

	output := runApp(t, srv, "")
	assert.Contains(t, output, "ArcheoLens")
}

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeolens/archeolens-server/internal/apierrors"
	"github.com/archeolens/archeolens-server/internal/model"
	"github.com/archeolens/archeolens-server/internal/repository/memory"
	"github.com/archeolens/archeolens-server/internal/testutil"
)

func newTestSite() *Site {
	return NewSite(memory.NewKVStore(), testutil.MakeNoopLogger())
}

func validSiteParams() model.SiteParams {
	return model.SiteParams{
		Name:        "Serra da Capivara",
		Description: "Parque nacional com pinturas rupestres",
		Location:    "-8.6833, -42.5833",
		Highlight:   "Maior concentração de sítios pré-históricos das Américas",
		State:       "Piauí",
		City:        "São Raimundo Nonato",
	}
}

func requireAPIError(t *testing.T, err error, status int) *apierrors.APIError {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok, "expected *apierrors.APIError, got %T", err)
	require.Equal(t, status, apiErr.Status)
	return apiErr
}

func TestSite_Create_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSite()
	owner := uuid.New()

	created, err := s.Create(ctx, owner, validSiteParams())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, owner.String(), created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Location, got.Location)
	assert.Equal(t, created.Highlight, got.Highlight)
	assert.Equal(t, created.State, got.State)
	assert.Equal(t, created.City, got.City)
	assert.Equal(t, created.CreatedBy, got.CreatedBy)
}

func TestSite_Create_MissingFields(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	mutations := map[string]func(*model.SiteParams){
		"name":        func(p *model.SiteParams) { p.Name = "" },
		"description": func(p *model.SiteParams) { p.Description = "" },
		"location":    func(p *model.SiteParams) { p.Location = "" },
		"highlight":   func(p *model.SiteParams) { p.Highlight = "" },
		"state":       func(p *model.SiteParams) { p.State = "" },
		"city":        func(p *model.SiteParams) { p.City = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			s := newTestSite()
			params := validSiteParams()
			mutate(&params)

			_, err := s.Create(ctx, owner, params)
			requireAPIError(t, err, http.StatusBadRequest)

			// Nothing persisted on validation failure.
			sites, err := s.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, sites)
		})
	}
}

func TestSite_Get_NotFound(t *testing.T) {
	_, err := newTestSite().Get(context.Background(), uuid.NewString())
	requireAPIError(t, err, http.StatusNotFound)
}

func TestSite_Update_MergesAndStamps(t *testing.T) {
	ctx := context.Background()
	s := newTestSite()
	owner := uuid.New()

	created, err := s.Create(ctx, owner, validSiteParams())
	require.NoError(t, err)

	updated, err := s.Update(ctx, owner, created.ID, model.SiteParams{Highlight: "Patrimônio Mundial da UNESCO"})
	require.NoError(t, err)
	assert.Equal(t, "Patrimônio Mundial da UNESCO", updated.Highlight)
	// Omitted fields keep their values.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.City, updated.City)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	require.NotNil(t, updated.UpdatedAt)
}

func TestSite_Update_NonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	s := newTestSite()
	owner := uuid.New()

	created, err := s.Create(ctx, owner, validSiteParams())
	require.NoError(t, err)

	_, err = s.Update(ctx, uuid.New(), created.ID, model.SiteParams{Name: "Outro nome"})
	requireAPIError(t, err, http.StatusForbidden)

	// Record unchanged.
	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestSite_Update_NotFound(t *testing.T) {
	_, err := newTestSite().Update(context.Background(), uuid.New(), uuid.NewString(), model.SiteParams{Name: "x"})
	requireAPIError(t, err, http.StatusNotFound)
}

func TestSite_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestSite()
	owner := uuid.New()

	created, err := s.Create(ctx, owner, validSiteParams())
	require.NoError(t, err)

	t.Run("non-owner forbidden", func(t *testing.T) {
		err := s.Delete(ctx, uuid.New(), created.ID)
		requireAPIError(t, err, http.StatusForbidden)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, owner, created.ID))
	})

	t.Run("repeated delete is not found", func(t *testing.T) {
		err := s.Delete(ctx, owner, created.ID)
		requireAPIError(t, err, http.StatusNotFound)
	})
}

func TestSite_Search(t *testing.T) {
	ctx := context.Background()
	s := newTestSite()
	owner := uuid.New()

	_, err := s.Create(ctx, owner, model.SiteParams{
		Name: "Serra", Description: "d", Location: "l", Highlight: "h",
		State: "Piauí", City: "São Raimundo Nonato",
	})
	require.NoError(t, err)
	_, err = s.Create(ctx, owner, model.SiteParams{
		Name: "Capivara", Description: "d", Location: "l", Highlight: "h",
		State: "Pernambuco", City: "Petrolina",
	})
	require.NoError(t, err)

	t.Run("substring by name", func(t *testing.T) {
		sites, err := s.Search(ctx, "ser", "name")
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "Serra", sites[0].Name)
	})

	t.Run("case-insensitive by city", func(t *testing.T) {
		sites, err := s.Search(ctx, "nonato", "city")
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "São Raimundo Nonato", sites[0].City)
	})

	t.Run("by state", func(t *testing.T) {
		sites, err := s.Search(ctx, "pernambuco", "state")
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "Capivara", sites[0].Name)
	})

	t.Run("default type is name", func(t *testing.T) {
		sites, err := s.Search(ctx, "capivara", "")
		require.NoError(t, err)
		require.Len(t, sites, 1)
	})

	t.Run("unknown type matches nothing", func(t *testing.T) {
		sites, err := s.Search(ctx, "serra", "country")
		require.NoError(t, err)
		assert.Empty(t, sites)
	})

	t.Run("empty query matches all", func(t *testing.T) {
		sites, err := s.Search(ctx, "", "name")
		require.NoError(t, err)
		assert.Len(t, sites, 2)
	})
}

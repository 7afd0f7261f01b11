package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/customer-templates/internal/errors"
	"github.com/umalmyha/customer-templates/internal/model"
)

func TestTemplateService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	templateSvc := NewTemplateService(st)

	t.Log("stats are calculated for seed templates")
	{
		stats, err := templateSvc.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, stats.Total)
		require.Equal(t, 13, stats.TotalPlaceholders)
		require.NotNil(t, stats.Latest)
		require.Equal(t, "1", stats.Latest.ID, "template created on 2024-01-15 is the latest")
	}

	var created model.Template
	t.Log("created template becomes the latest and is fanned out")
	{
		var err error
		created, err = templateSvc.Create(ctx, model.NewTemplate{Name: "Biên bản nghiệm thu", FileName: "nghiem-thu.docx"})
		require.NoError(t, err)
		require.NotNil(t, created.Placeholders, "placeholders must never be null")

		stats, err := templateSvc.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, 4, stats.Total)
		require.Equal(t, created.ID, stats.Latest.ID)

		c, ok := st.GetCustomerByID(ctx, "2")
		require.True(t, ok)
		require.Equal(t, "nghiem-thu-kh002.docx", c.Templates[len(c.Templates)-1].FileName)
	}

	t.Log("template is deleted once")
	{
		require.NoError(t, templateSvc.DeleteByID(ctx, created.ID))

		_, err := templateSvc.FindByID(ctx, created.ID)
		require.IsType(t, &apperrors.EntryNotFoundErr{}, err)

		err = templateSvc.DeleteByID(ctx, created.ID)
		require.IsType(t, &apperrors.EntryNotFoundErr{}, err, "second deletion must report missing template")
	}

	t.Log("common placeholders are provided")
	{
		require.Contains(t, templateSvc.Placeholders(), "{Tên khách hàng}")
	}
}

func TestTemplateStatsEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	templateSvc := NewTemplateService(st)

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, templateSvc.DeleteByID(ctx, id))
	}

	stats, err := templateSvc.Stats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.Total)
	require.Nil(t, stats.Latest, "no latest template without templates")
}

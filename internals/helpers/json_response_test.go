package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaging(t *testing.T) {
	app := fiber.New()

	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		url      string
		page     int
		perPage  int
		offset   int
	}{
		{"/x", 1, 20, 0},
		{"/x?page=3&per_page=10", 3, 10, 20},
		{"/x?limit=50", 1, 50, 0}, // alias ?limit=
		{"/x?page=0&per_page=-5", 1, 20, 0},
		{"/x?per_page=500", 1, 100, 0}, // clamp ke max
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		require.NoError(t, err, tc.url)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		assert.Equal(t, tc.page, got.Page, tc.url)
		assert.Equal(t, tc.perPage, got.PerPage, tc.url)
		assert.Equal(t, tc.offset, got.Offset, tc.url)
		assert.Equal(t, got.PerPage, got.Limit, tc.url)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

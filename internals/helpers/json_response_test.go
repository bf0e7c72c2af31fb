package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveVia(t, "/x", 25, 200)
	if p.Page != 1 || p.PerPage != 25 || p.Offset != 0 || p.Limit != 25 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestResolvePagingClampsAndOffsets(t *testing.T) {
	p := resolveVia(t, "/x?page=3&per_page=999", 25, 200)
	if p.PerPage != 200 {
		t.Fatalf("per_page must clamp to max, got %d", p.PerPage)
	}
	if p.Offset != 400 {
		t.Fatalf("offset for page 3 of 200 must be 400, got %d", p.Offset)
	}

	p = resolveVia(t, "/x?page=-1&limit=10", 25, 200)
	if p.Page != 1 || p.PerPage != 10 {
		t.Fatalf("page <1 must reset to 1, limit alias must apply: %+v", p)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(101, 2, 25)
	if pg.TotalPages != 5 {
		t.Fatalf("expected ceil(101/25)=5, got %d", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("page 2 of 5 must have next and prev: %+v", pg)
	}

	pg = BuildPaginationFromPage(0, 1, 25)
	if pg.TotalPages != 1 || pg.HasNext || pg.HasPrev {
		t.Fatalf("empty result still reports one page: %+v", pg)
	}
}

package seeder_test

import (
	"context"
	"math/rand"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/mosite/go-blog/internal/articles"
	"github.com/mosite/go-blog/internal/categories"
	"github.com/mosite/go-blog/internal/seeder"
)

func TestGenerateMessageValidation(t *testing.T) {
	cases := []struct {
		name  string
		count int
		ok    bool
	}{
		{"valid", 100, true},
		{"max", seeder.MaxAdminCount, true},
		{"zero", 0, false},
		{"negative", -1, false},
		{"over max", seeder.MaxAdminCount + 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := seeder.GenerateMessage{Count: tc.count}.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid message, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestGenerateHandlerRuns(t *testing.T) {
	cats := categories.NewMemoryCategoryRepository()
	arts := articles.NewMemoryArticleRepository(cats)
	svc := seeder.NewService(arts, cats,
		seeder.WithRand(rand.New(rand.NewSource(1))),
		seeder.WithContentSize(3, 5))

	handler := seeder.NewGenerateHandler(svc, nil)
	if err := handler.Execute(context.Background(), seeder.GenerateMessage{Count: 10}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	all, err := arts.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("expected 10 articles, got %d", len(all))
	}
}

func TestGenerateHandlerRejectsInvalidCount(t *testing.T) {
	cats := categories.NewMemoryCategoryRepository()
	arts := articles.NewMemoryArticleRepository(cats)
	svc := seeder.NewService(arts, cats, seeder.WithContentSize(3, 5))

	handler := seeder.NewGenerateHandler(svc, nil)
	err := handler.Execute(context.Background(), seeder.GenerateMessage{Count: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestClearHandlerRuns(t *testing.T) {
	cats := categories.NewMemoryCategoryRepository()
	arts := articles.NewMemoryArticleRepository(cats)
	svc := seeder.NewService(arts, cats,
		seeder.WithRand(rand.New(rand.NewSource(1))),
		seeder.WithContentSize(3, 5))
	ctx := context.Background()

	if _, err := svc.Generate(ctx, 5); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	handler := seeder.NewClearHandler(svc, nil)
	if err := handler.Execute(ctx, seeder.ClearMessage{}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	all, err := arts.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d articles", len(all))
	}
}

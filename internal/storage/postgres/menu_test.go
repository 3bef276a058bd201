package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/domain/model"
)

var menuColumnNames = []string{
	"id", "name", "category", "description", "base_price", "image_url", "customizations", "active", "created_at", "updated_at",
}

func TestMenuRepositoryCreateAndUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &menuRepository{storage: storage}

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	item := &model.MenuItem{
		Name:      "Burger",
		Category:  "Mains",
		BasePrice: decimal.RequireFromString("8.5"),
		Customizations: []model.Customization{
			{Name: "Extra cheese", Price: decimal.RequireFromString("1")},
		},
		Active: true,
	}

	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs("Burger", "Mains", "", "8.50", "", []byte(`[{"name":"Extra cheese","price":"1"}]`), true).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(4), now, now))
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 4 || !item.CreatedAt.Equal(now) {
		t.Fatalf("unexpected item: %+v", item)
	}

	later := now.Add(time.Hour)
	item.Description = "Grilled beef"
	mock.ExpectQuery("UPDATE menu_items").
		WithArgs("Burger", "Mains", "Grilled beef", "8.50", "", pgxmockv3.AnyArg(), int64(4)).
		WillReturnRows(pgxmockv3.NewRows([]string{"active", "created_at", "updated_at"}).AddRow(false, now, later))
	if err := repo.Update(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Active || !item.UpdatedAt.Equal(later) {
		t.Fatalf("expected stored state to be reflected: %+v", item)
	}

	mock.ExpectQuery("UPDATE menu_items").WillReturnError(pgx.ErrNoRows)
	if err := repo.Update(context.Background(), &model.MenuItem{ID: 99}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("UPDATE menu_items").WillReturnError(errors.New("update"))
	if err := repo.Update(context.Background(), &model.MenuItem{ID: 5}); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected raw error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestMenuRepositoryGetAndList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &menuRepository{storage: storage}

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM menu_items WHERE id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(menuColumnNames).AddRow(int64(1), "Burger", "Mains", "", "8.50", "", []byte(`[{"name":"Bacon","price":"2.00"}]`), true, now, now))
	item, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.BasePrice.Equal(decimal.RequireFromString("8.5")) || len(item.Customizations) != 1 {
		t.Fatalf("unexpected item: %+v", item)
	}

	mock.ExpectQuery("FROM menu_items WHERE id=").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM menu_items WHERE id=").WithArgs(int64(3)).WillReturnRows(
		pgxmockv3.NewRows(menuColumnNames).AddRow(int64(3), "Burger", "Mains", "", "cheap", "", []byte(`[]`), true, now, now))
	if _, err := repo.GetByID(context.Background(), 3); err == nil {
		t.Fatal("expected price parse error")
	}

	mock.ExpectQuery("FROM menu_items WHERE active ORDER BY category, name").WillReturnRows(
		pgxmockv3.NewRows(menuColumnNames).
			AddRow(int64(2), "Cola", "Drinks", "", "1.50", "", []byte(`[]`), true, now, now).
			AddRow(int64(1), "Burger", "Mains", "", "8.50", "", []byte(`[]`), true, now, now))
	items, err := repo.List(context.Background(), true)
	if err != nil || len(items) != 2 {
		t.Fatalf("unexpected result: %v err=%v", items, err)
	}

	mock.ExpectQuery("FROM menu_items ORDER BY category, name").WillReturnRows(pgxmockv3.NewRows(menuColumnNames))
	items, err = repo.List(context.Background(), false)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty menu, got %v err=%v", items, err)
	}

	mock.ExpectQuery("FROM menu_items").WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background(), false); err == nil {
		t.Fatal("expected query error")
	}

	mock.ExpectQuery("FROM menu_items").WillReturnRows(
		pgxmockv3.NewRows(menuColumnNames).AddRow(int64(1), "Burger", "Mains", "", "8.50", "", []byte(`{`), true, now, now))
	if _, err := repo.List(context.Background(), false); err == nil {
		t.Fatal("expected decode error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestMenuRepositoryListRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &menuRepository{storage: storage}

	if _, err := repo.List(context.Background(), true); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestMenuRepositorySetActiveAndDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &menuRepository{storage: storage}

	mock.ExpectExec("UPDATE menu_items SET active").WithArgs(false, int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.SetActive(context.Background(), 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE menu_items SET active").WithArgs(true, int64(2)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.SetActive(context.Background(), 2, true); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE menu_items SET active").WithArgs(true, int64(3)).WillReturnError(errors.New("update"))
	if err := repo.SetActive(context.Background(), 3, true); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectExec("DELETE FROM menu_items").WithArgs(int64(1)).WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("DELETE FROM menu_items").WithArgs(int64(2)).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	if err := repo.Delete(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("DELETE FROM menu_items").WithArgs(int64(3)).WillReturnError(errors.New("delete"))
	if err := repo.Delete(context.Background(), 3); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

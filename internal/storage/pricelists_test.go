package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	pq "github.com/lib/pq"

	"github.com/guttosm/auctionpulse/internal/domain/models"
)

var (
	pricelistCols = []string{"id", "user_id", "name", "region", "realm", "created_at", "updated_at"}
	entryCols     = []string{"id", "pricelist_id", "item_id", "quantity_modifier"}
	fixedTime     = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
)

func TestPricelistsRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPricelistsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pricelists")).WithArgs(int64(1), "us", "earthen-ring").
		WillReturnRows(sqlmock.NewRows(pricelistCols).
			AddRow(int64(7), int64(1), "Herbs", "us", "earthen-ring", fixedTime, fixedTime).
			AddRow(int64(8), int64(1), "Ores", "us", "earthen-ring", fixedTime, fixedTime))
	mock.ExpectQuery(regexp.QuoteMeta("FROM pricelist_entries")).WithArgs(pq.Array([]int64{7, 8})).
		WillReturnRows(sqlmock.NewRows(entryCols).
			AddRow(int64(31), int64(7), int64(2447), 20).
			AddRow(int64(32), int64(8), int64(2770), 1).
			AddRow(int64(33), int64(7), int64(765), 5))

	lists, err := repo.ListByUser(context.Background(), 1, "us", "earthen-ring")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(lists) != 2 || lists[0].Name != "Herbs" || lists[1].Name != "Ores" {
		t.Fatalf("unexpected lists %+v", lists)
	}
	if len(lists[0].Entries) != 2 || lists[0].Entries[1].ItemID != 765 {
		t.Fatalf("unexpected herbs entries %+v", lists[0].Entries)
	}
	if len(lists[1].Entries) != 1 || lists[1].Entries[0].QuantityModifier != 1 {
		t.Fatalf("unexpected ores entries %+v", lists[1].Entries)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPricelistsRepository_ListByUser_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM pricelists")).WillReturnRows(sqlmock.NewRows(pricelistCols))

	lists, err := NewPricelistsRepository(db).ListByUser(context.Background(), 1, "us", "x")
	if err != nil || lists == nil || len(lists) != 0 {
		t.Fatalf("want empty non-nil slice, got %+v err=%v", lists, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPricelistsRepository_FindByID(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantNil bool
		wantErr bool
	}{
		{
			name: "found with entries",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM pricelists WHERE id = $1")).WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(pricelistCols).
						AddRow(int64(7), int64(1), "Herbs", "us", "earthen-ring", fixedTime, fixedTime))
				m.ExpectQuery(regexp.QuoteMeta("FROM pricelist_entries")).WithArgs(pq.Array([]int64{7})).
					WillReturnRows(sqlmock.NewRows(entryCols).AddRow(int64(31), int64(7), int64(2447), 20))
			},
		},
		{
			name: "missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM pricelists WHERE id = $1")).WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "entries query fails",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM pricelists WHERE id = $1")).
					WillReturnRows(sqlmock.NewRows(pricelistCols).
						AddRow(int64(7), int64(1), "Herbs", "us", "earthen-ring", fixedTime, fixedTime))
				m.ExpectQuery(regexp.QuoteMeta("FROM pricelist_entries")).WillReturnError(dummyErr{})
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			p, err := NewPricelistsRepository(db).FindByID(context.Background(), 7)
			switch {
			case tc.wantErr:
				if err == nil {
					t.Fatalf("expected error")
				}
			case tc.wantNil:
				if err != nil || p != nil {
					t.Fatalf("want nil,nil got p=%+v err=%v", p, err)
				}
			default:
				if err != nil || p == nil || len(p.Entries) != 1 || p.Entries[0].ItemID != 2447 {
					t.Fatalf("unexpected p=%+v err=%v", p, err)
				}
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestPricelistsRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pricelists")).WithArgs(int64(1), "Herbs", "us", "earthen-ring").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), fixedTime, fixedTime))
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO pricelist_entries"))
	prep.ExpectQuery().WithArgs(int64(7), int64(2447), 20).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(31)))
	prep.ExpectQuery().WithArgs(int64(7), int64(765), 1).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(32)))
	mock.ExpectCommit()

	in := models.Pricelist{UserID: 1, Name: "Herbs", Region: "us", Realm: "earthen-ring"}
	entries := []models.PricelistEntry{{ItemID: 2447, QuantityModifier: 20}, {ItemID: 765, QuantityModifier: 1}}

	p, err := NewPricelistsRepository(db).Create(context.Background(), in, entries)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != 7 || len(p.Entries) != 2 || p.Entries[0].ID != 31 || p.Entries[1].PricelistID != 7 {
		t.Fatalf("unexpected pricelist %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPricelistsRepository_Create_RollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pricelists")).WillReturnError(dummyErr{})
	mock.ExpectRollback()

	_, err := NewPricelistsRepository(db).Create(context.Background(), models.Pricelist{UserID: 1, Name: "x"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPricelistsRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE pricelists")).WithArgs("Renamed", int64(7)).
		WillReturnRows(sqlmock.NewRows(pricelistCols).
			AddRow(int64(7), int64(1), "Renamed", "us", "earthen-ring", fixedTime, fixedTime))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM pricelist_entries WHERE pricelist_id = $1")).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(31)).AddRow(int64(32)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pricelist_entries")).WithArgs(int64(2447), 5, int64(31)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO pricelist_entries"))
	prep.ExpectQuery().WithArgs(int64(7), int64(765), 1).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(40)))
	prep.ExpectQuery().WithArgs(int64(7), int64(100), 2).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pricelist_entries")).WithArgs(int64(7), pq.Array([]int64{31, 40, 41})).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entries := []models.PricelistEntry{
		{ID: 31, ItemID: 2447, QuantityModifier: 5},
		{ID: 99, ItemID: 765, QuantityModifier: 1}, // foreign id is inserted as new
		{ItemID: 100, QuantityModifier: 2},
	}
	p, err := NewPricelistsRepository(db).Update(context.Background(), models.Pricelist{ID: 7, Name: "Renamed"}, entries)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Name != "Renamed" || p.UserID != 1 || len(p.Entries) != 3 {
		t.Fatalf("unexpected pricelist %+v", p)
	}
	if p.Entries[0].ID != 31 || p.Entries[1].ID != 40 || p.Entries[2].ID != 41 {
		t.Fatalf("unexpected entry ids %+v", p.Entries)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPricelistsRepository_Update_Missing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE pricelists")).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	p, err := NewPricelistsRepository(db).Update(context.Background(), models.Pricelist{ID: 7, Name: "x"}, nil)
	if err != nil || p != nil {
		t.Fatalf("want nil,nil got p=%+v err=%v", p, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPricelistsRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPricelistsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pricelists WHERE id = $1")).WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pricelists WHERE id = $1")).WillReturnError(dummyErr{})
	if err := repo.Delete(context.Background(), 7); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

package listingmatch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
)

var testSchema = []string{
	`create table listings (
	id integer primary key autoincrement,
	title text,
	manufacturer text,
	currency text,
	price text
)`,
	`create table products (
	id integer primary key autoincrement,
	product_name text not null,
	manufacturer text,
	family text,
	model text,
	announced_date text
)`,
	`create table stop_words (
	id integer primary key autoincrement,
	word text not null
)`,
}

func NewTestDBClient(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := NewDBClient(NewSQLiteDBConfig(filepath.Join(t.TempDir(), "listingmatch.db")))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	for _, ddl := range testSchema {
		db.MustExec(ddl)
	}
	return db
}

func TestStorageRdbImpl(t *testing.T) {
	db := NewTestDBClient(t)
	db.MustExec(`insert into listings (title, manufacturer, currency, price) values
		('Sony DSC-W310', 'Sony', 'CAD', '99.99'),
		('Nikon D90', null, 'USD', '499.00')`)
	db.MustExec(`insert into products (product_name, manufacturer, family, model, announced_date) values
		('Sony_Cyber-shot_DSC-W310', 'Sony', 'Cyber-shot', 'DSC-W310', '2010-01-06'),
		('Nikon_D90', 'Nikon', null, 'D90', null)`)
	db.MustExec(`insert into stop_words (word) values ('and'), ('for')`)

	storage := NewStorageRdbImpl(db)
	in, err := LoadInputs(context.Background(), storage)
	if err != nil {
		t.Fatal(err)
	}

	expectedListings := []*Listing{
		{Title: "Sony DSC-W310", Manufacturer: "Sony", Currency: "CAD", Price: "99.99"},
		{Title: "Nikon D90", Currency: "USD", Price: "499.00"},
	}
	if diff := cmp.Diff(in.Listings, expectedListings); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	expectedProducts := []*Product{
		{ProductName: "Sony_Cyber-shot_DSC-W310", Manufacturer: "Sony", Family: "Cyber-shot", Model: "DSC-W310", AnnouncedDate: "2010-01-06"},
		{ProductName: "Nikon_D90", Manufacturer: "Nikon", Model: "D90"},
	}
	if diff := cmp.Diff(in.Products, expectedProducts); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(in.StopWords, []string{"and", "for"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestStorageRdbImplEmptyTables(t *testing.T) {
	storage := NewStorageRdbImpl(NewTestDBClient(t))
	in, err := LoadInputs(context.Background(), storage)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, Inputs{Listings: []*Listing{}, Products: []*Product{}, StopWords: []string{}}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestDBConfigDSN(t *testing.T) {
	dsn, err := NewDBConfig("root", "password", "127.0.0.1", "3306", "listingmatch").DSN()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := mysql.ParseDSN(dsn)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.User != "root" || parsed.Passwd != "password" || parsed.Addr != "127.0.0.1:3306" || parsed.DBName != "listingmatch" {
		t.Errorf("unexpected dsn %q", dsn)
	}

	if _, err := (&DBConfig{Driver: "oracle"}).DSN(); err == nil {
		t.Errorf("DSN() for an unsupported driver must fail")
	}
}

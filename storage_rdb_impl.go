package listingmatch

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DBConfig struct {
	Driver   string
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
	Path     string // sqliteのファイルパス
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		Driver:   DriverMySQL,
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func NewSQLiteDBConfig(path string) *DBConfig {
	return &DBConfig{
		Driver: DriverSQLite,
		Path:   path,
	}
}

// DSN returns the data source name for the configured driver.
func (c *DBConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = c.Addr + ":" + c.Port
		mc.DBName = c.DB
		return mc.FormatDSN(), nil
	case DriverSQLite:
		return c.Path, nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", c.Driver)
	}
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	dsn, err := dbConfig.DSN()
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open(dbConfig.Driver, dsn)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// StorageRdbImpl reads inputs from the listings, products and stop_words tables.
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) GetAllListings(ctx context.Context) ([]*Listing, error) {
	var listings []*Listing
	if err := s.DB.SelectContext(ctx, &listings,
		`select
			coalesce(title, '') as title,
			coalesce(manufacturer, '') as manufacturer,
			coalesce(currency, '') as currency,
			coalesce(price, '') as price
		from
			listings
		order by id`); err != nil {
		return nil, fmt.Errorf("select listings: %w", err)
	}
	if listings == nil {
		listings = []*Listing{}
	}
	return listings, nil
}

func (s *StorageRdbImpl) GetAllProducts(ctx context.Context) ([]*Product, error) {
	var products []*Product
	if err := s.DB.SelectContext(ctx, &products,
		`select
			coalesce(product_name, '') as product_name,
			coalesce(manufacturer, '') as manufacturer,
			coalesce(family, '') as family,
			coalesce(model, '') as model,
			coalesce(announced_date, '') as announced_date
		from
			products
		order by id`); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	if products == nil {
		products = []*Product{}
	}
	return products, nil
}

func (s *StorageRdbImpl) GetStopWords(ctx context.Context) ([]string, error) {
	var words []string
	if err := s.DB.SelectContext(ctx, &words, `select word from stop_words order by id`); err != nil {
		return nil, fmt.Errorf("select stop_words: %w", err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

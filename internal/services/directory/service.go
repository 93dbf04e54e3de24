/*
Package directory owns the reference data around a sale: products,
customers, staff accounts and expenses, plus staff authentication.

Product quantity is the one column it never writes directly; creating a
product with opening stock goes through the inventory ledger.
*/
package directory

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"vican-pos/internal/cache"
	"vican-pos/internal/utils"
)

const (
	DefaultSessionTTL    = 24 * time.Hour
	DefaultLoginTokenTTL = 5 * 365 * 24 * time.Hour

	defaultPageSize = 50
	maxPageSize     = 500
)

type Options struct {
	SessionTTL    time.Duration
	LoginTokenTTL time.Duration
}

type Service struct {
	db     *gorm.DB
	cache  *cache.Cache
	tokens *utils.TokenIssuer
	opts   Options
}

func NewService(db *gorm.DB, c *cache.Cache, tokens *utils.TokenIssuer, opts Options) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.LoginTokenTTL <= 0 {
		opts.LoginTokenTTL = DefaultLoginTokenTTL
	}
	return &Service{db: db, cache: c, tokens: tokens, opts: opts}
}

// ListFilter is shared by every listing. PageToken is the 1-based page
// number as a string; an empty token is the first page.
type ListFilter struct {
	Search    string
	Active    *bool
	PageSize  int
	PageToken string
}

type Page struct {
	NextPageToken string
	TotalCount    int64
}

func (f ListFilter) pattern() string {
	return "%" + strings.ToLower(strings.TrimSpace(f.Search)) + "%"
}

// paginate counts the filtered query and applies offset and limit.
func paginate(query *gorm.DB, f ListFilter) (*gorm.DB, Page, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Page{}, err
	}

	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	pageNumber := 1
	if f.PageToken != "" {
		if n, err := strconv.Atoi(f.PageToken); err == nil && n > 0 {
			pageNumber = n
		}
	}

	page := Page{TotalCount: total}
	if int64(pageNumber*pageSize) < total {
		page.NextPageToken = strconv.Itoa(pageNumber + 1)
	}

	offset := (pageNumber - 1) * pageSize
	return query.Offset(offset).Limit(pageSize), page, nil
}

// catalogChanged drops cached reports after anything they read has changed.
func (s *Service) catalogChanged(ctx context.Context, what string) {
	log.Printf("[directory] %s changed", what)
	s.cache.Bump(ctx, cache.ReportsNamespace)
}

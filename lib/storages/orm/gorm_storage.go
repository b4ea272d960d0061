package orm

import (
	"log"
	"os"
	"sort"
	"time"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/gitscore/lib/consoles"
	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/storages"
)

type gormStorage struct {
	db      *gorm.DB
	console consoles.Console
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		Logger: l,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlContributor{},
		&sqlScorecard{},
	)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func (s *gormStorage) LoadConfig() (map[string]string, error) {
	var rows []*sqlConfig
	err := s.db.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.SliceToMap(rows, func(r *sqlConfig) (string, string) {
		return r.Key, r.Value
	}), nil
}

func (s *gormStorage) WriteConfig(config map[string]string) error {
	if len(config) == 0 {
		return nil
	}

	rows := lo.MapToSlice(config, func(k string, v string) *sqlConfig {
		return &sqlConfig{Key: k, Value: v}
	})

	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

func (s *gormStorage) LoadContributors() (*model.Contributors, error) {
	var rows []*sqlContributor
	err := s.db.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := model.NewContributors()
	for _, row := range rows {
		result.Add(row.toModel())
	}

	return result, nil
}

func (s *gormStorage) WriteContributors(contributors *model.Contributors) error {
	rows := lo.Map(contributors.List(), func(c *model.Contributor, _ int) *sqlContributor {
		return toSqlContributor(c)
	})
	if len(rows) == 0 {
		return nil
	}

	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

func (s *gormStorage) LoadScorecards() ([]*model.Scorecard, error) {
	contributors, err := s.LoadContributors()
	if err != nil {
		return nil, err
	}

	var rows []*sqlScorecard
	err = s.db.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var result []*model.Scorecard
	for _, row := range rows {
		contributor := contributors.Get(row.ContributorKey)
		if contributor == nil {
			continue
		}

		result = append(result, row.toModel(contributor))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Contributor.Key < result[j].Contributor.Key
	})

	return result, nil
}

func (s *gormStorage) WriteScorecards(cards []*model.Scorecard) error {
	if len(cards) == 0 {
		return nil
	}

	rows := lo.Map(cards, func(card *model.Scorecard, _ int) *sqlScorecard {
		return toSqlScorecard(card)
	})

	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

func sortedSlice(s *set.Set[string]) []string {
	result := s.Slice()
	sort.Strings(result)
	return result
}

package holiday

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hr-module/internal/employee"
	holidayerrors "hr-module/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeHolidayRepository struct {
	findAllActiveFn func(ctx context.Context) ([]Holiday, error)
	findUpcomingFn  func(ctx context.Context, centerID int, from time.Time) ([]Holiday, error)
}

func (f *fakeHolidayRepository) FindAllActive(ctx context.Context) ([]Holiday, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindUpcoming(ctx context.Context, centerID int, from time.Time) ([]Holiday, error) {
	if f.findUpcomingFn != nil {
		return f.findUpcomingFn(ctx, centerID, from)
	}
	return nil, nil
}

type stubEmployeeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (s *stubEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return s }

func (s *stubEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	return nil
}

func (s *stubEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	return nil
}

func (s *stubEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubEmployeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func (s *stubEmployeeRepository) CountWithRole(ctx context.Context, role string) (int64, error) {
	return 0, nil
}

func TestHolidayService_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("active holidays map onto their wire shape", func(t *testing.T) {
		repo := &fakeHolidayRepository{
			findAllActiveFn: func(ctx context.Context) ([]Holiday, error) {
				return []Holiday{
					{
						ID:          uuid.New(),
						Name:        "Republic Day",
						Date:        time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC),
						HolidayType: TypeNational,
						IsActive:    true,
					},
				}, nil
			},
		}
		svc := NewService(repo, &stubEmployeeRepository{})

		resp, err := svc.ListAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Republic Day", resp[0].Name)
		assert.Equal(t, "2026-01-26", resp[0].Date)
	})

	t.Run("no holidays yields an empty list", func(t *testing.T) {
		svc := NewService(&fakeHolidayRepository{}, &stubEmployeeRepository{})

		resp, err := svc.ListAll(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestHolidayService_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	fixedNow := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("query is scoped to the employee's center from today", func(t *testing.T) {
		empRepo := &stubEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				assert.Equal(t, employeeID.String(), id)
				return &employee.Employee{ID: employeeID, CenterID: 7}, nil
			},
		}

		var gotCenter int
		var gotFrom time.Time
		repo := &fakeHolidayRepository{
			findUpcomingFn: func(ctx context.Context, centerID int, from time.Time) ([]Holiday, error) {
				gotCenter = centerID
				gotFrom = from
				return []Holiday{
					{ID: uuid.New(), Name: "Founders Day", Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), HolidayType: TypeCenterSpecific},
					{ID: uuid.New(), Name: "Independence Day", Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), HolidayType: TypeNational},
				}, nil
			},
		}

		svc := NewService(repo, empRepo).(*service)
		svc.now = func() time.Time { return fixedNow }

		resp, err := svc.ListUpcoming(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, 7, gotCenter)
		assert.False(t, gotFrom.After(fixedNow))
		assert.Len(t, resp, 2)
		assert.Equal(t, "Founders Day", resp[0].Name)
	})

	t.Run("malformed employee id is rejected before any lookup", func(t *testing.T) {
		svc := NewService(&fakeHolidayRepository{}, &stubEmployeeRepository{})

		_, err := svc.ListUpcoming(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, holidayerrors.ErrInvalidEmployeeID)
	})

	t.Run("unknown employee reports not found", func(t *testing.T) {
		svc := NewService(&fakeHolidayRepository{}, &stubEmployeeRepository{})

		_, err := svc.ListUpcoming(ctx, employeeID.String())

		assert.ErrorIs(t, err, holidayerrors.ErrEmployeeNotFound)
	})
}

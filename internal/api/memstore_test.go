package api

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// In-memory stores backing the end-to-end router tests. Each mirrors the
// behaviour of its MongoDB counterpart closely enough for the auth and
// record flows under test.

type memStore struct {
	managers  map[string]*domain.Manager
	employees map[string]*domain.Employee
	animals   []*domain.Animal
	milk      []*domain.MilkRecord
	reports   []*domain.HealthReport
	sales     []*domain.Sale
	products  map[string]*domain.Product
	finance   []*domain.FinanceRecord
	orders    []*domain.Order
	nextID    int
}

func newMemStore() *memStore {
	return &memStore{
		managers:  make(map[string]*domain.Manager),
		employees: make(map[string]*domain.Employee),
		products:  make(map[string]*domain.Product),
	}
}

func (s *memStore) id() string {
	s.nextID++
	return fmt.Sprintf("id%04d", s.nextID)
}

func matches(term string, fields ...string) bool {
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	for _, f := range fields {
		if re.MatchString(f) {
			return true
		}
	}
	return false
}

// --- ports.ManagerRepository ---

type memManagerRepo struct{ s *memStore }

func (r *memManagerRepo) Create(_ context.Context, m *domain.Manager) (*domain.Manager, error) {
	if _, exists := r.s.managers[m.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *m
	clone.ID = r.s.id()
	r.s.managers[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *memManagerRepo) FindByUsername(_ context.Context, username string) (*domain.Manager, error) {
	if m, ok := r.s.managers[username]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memManagerRepo) FindByID(_ context.Context, id string) (*domain.Manager, error) {
	for _, m := range r.s.managers {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// --- ports.EmployeeRepository ---

type memEmployeeRepo struct{ s *memStore }

func (r *memEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, exists := r.s.employees[e.Username]; exists {
		return nil, domain.ErrEmployeeExists
	}
	clone := *e
	clone.ID = r.s.id()
	r.s.employees[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *memEmployeeRepo) FindByUsername(_ context.Context, username string) (*domain.Employee, error) {
	if e, ok := r.s.employees[username]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	for _, e := range r.s.employees {
		if e.ID == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) List(context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		clone := *e
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r *memEmployeeRepo) Search(_ context.Context, term string) ([]*domain.Employee, error) {
	var out []*domain.Employee
	for _, e := range r.s.employees {
		if matches(term, e.EmployeeID, e.Name) {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	for _, e := range r.s.employees {
		if e.ID == id {
			e.Name = input.Name
			e.Gender = input.Gender
			e.Contact = input.Contact
			e.Salary = input.Salary
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) Delete(_ context.Context, id string) error {
	for username, e := range r.s.employees {
		if e.ID == id {
			delete(r.s.employees, username)
			return nil
		}
	}
	return domain.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) LastEmployeeID(context.Context) (string, error) {
	last := ""
	for _, e := range r.s.employees {
		if e.EmployeeID > last {
			last = e.EmployeeID
		}
	}
	return last, nil
}

func (r *memEmployeeRepo) Count(context.Context) (int64, error) {
	return int64(len(r.s.employees)), nil
}

// --- ports.CredentialStore ---

type memCredentialStore struct {
	managers  *memManagerRepo
	employees *memEmployeeRepo
}

func (s *memCredentialStore) FindManagerByID(ctx context.Context, id string) (*domain.Manager, error) {
	return s.managers.FindByID(ctx, id)
}

func (s *memCredentialStore) FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

// --- ports.AnimalRepository ---

type memAnimalRepo struct{ s *memStore }

func (r *memAnimalRepo) Create(_ context.Context, a *domain.Animal) (*domain.Animal, error) {
	for _, existing := range r.s.animals {
		if existing.AnimalID == a.AnimalID {
			return nil, domain.ErrAnimalExists
		}
	}
	clone := *a
	clone.ID = r.s.id()
	r.s.animals = append(r.s.animals, &clone)
	out := clone
	return &out, nil
}

func (r *memAnimalRepo) FindByAnimalID(_ context.Context, animalID string) (*domain.Animal, error) {
	for _, a := range r.s.animals {
		if a.AnimalID == animalID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAnimalNotFound
}

func (r *memAnimalRepo) List(context.Context) ([]*domain.Animal, error) {
	return r.s.animals, nil
}

func (r *memAnimalRepo) Search(_ context.Context, term string) ([]*domain.Animal, error) {
	var out []*domain.Animal
	for _, a := range r.s.animals {
		if matches(term, a.AnimalID, a.Name, a.Type) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAnimalRepo) Count(context.Context) (int64, error) {
	return int64(len(r.s.animals)), nil
}

// --- ports.MilkRepository ---

type memMilkRepo struct{ s *memStore }

func (r *memMilkRepo) Create(_ context.Context, rec *domain.MilkRecord) (*domain.MilkRecord, error) {
	clone := *rec
	clone.ID = r.s.id()
	r.s.milk = append(r.s.milk, &clone)
	out := clone
	return &out, nil
}

func (r *memMilkRepo) List(_ context.Context, filter ports.MilkFilter) ([]*domain.MilkRecord, error) {
	var out []*domain.MilkRecord
	for _, rec := range r.s.milk {
		if filter.AnimalID != "" && !matches(filter.AnimalID, rec.AnimalID) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memMilkRepo) DayStats(context.Context, int) ([]domain.MilkDayStats, error) {
	return nil, nil
}

func (r *memMilkRepo) TotalForDay(_ context.Context, day time.Time) (float64, error) {
	var total float64
	for _, rec := range r.s.milk {
		if rec.ProductionDate.Truncate(24 * time.Hour).Equal(day.Truncate(24 * time.Hour)) {
			total += rec.Quantity
		}
	}
	return total, nil
}

// --- ports.HealthReportRepository ---

type memHealthReportRepo struct{ s *memStore }

func (r *memHealthReportRepo) Create(_ context.Context, rep *domain.HealthReport) (*domain.HealthReport, error) {
	clone := *rep
	clone.ID = r.s.id()
	r.s.reports = append(r.s.reports, &clone)
	out := clone
	return &out, nil
}

func (r *memHealthReportRepo) List(_ context.Context, animalID string) ([]*domain.HealthReport, error) {
	var out []*domain.HealthReport
	for _, rep := range r.s.reports {
		if animalID != "" && !matches(animalID, rep.AnimalID) {
			continue
		}
		out = append(out, rep)
	}
	return out, nil
}

// --- ports.SaleRepository ---

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
	clone := *sale
	clone.ID = r.s.id()
	r.s.sales = append(r.s.sales, &clone)
	out := clone
	return &out, nil
}

func (r *memSaleRepo) FindBySaleID(_ context.Context, saleID string) (*domain.Sale, error) {
	for _, sale := range r.s.sales {
		if sale.SaleID == saleID {
			clone := *sale
			return &clone, nil
		}
	}
	return nil, domain.ErrSaleNotFound
}

func (r *memSaleRepo) List(_ context.Context, saleID string) ([]*domain.Sale, error) {
	var out []*domain.Sale
	for _, sale := range r.s.sales {
		if saleID != "" && !matches(saleID, sale.SaleID) {
			continue
		}
		out = append(out, sale)
	}
	return out, nil
}

func (r *memSaleRepo) DayStats(context.Context, int) ([]domain.SalesDayStats, error) {
	return nil, nil
}

// --- ports.ProductRepository ---

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, exists := r.s.products[p.ProductID]; exists {
		return nil, domain.ErrProductExists
	}
	clone := *p
	clone.ID = r.s.id()
	r.s.products[p.ProductID] = &clone
	out := clone
	return &out, nil
}

func (r *memProductRepo) FindByProductID(_ context.Context, productID string) (*domain.Product, error) {
	if p, ok := r.s.products[productID]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *memProductRepo) List(_ context.Context, search string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.s.products {
		if search != "" && !matches(search, p.ProductID, p.Name) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// --- ports.FinanceRepository ---

type memFinanceRepo struct{ s *memStore }

func (r *memFinanceRepo) Create(_ context.Context, rec *domain.FinanceRecord) (*domain.FinanceRecord, error) {
	clone := *rec
	clone.ID = r.s.id()
	r.s.finance = append(r.s.finance, &clone)
	out := clone
	return &out, nil
}

func (r *memFinanceRepo) List(_ context.Context, date time.Time) ([]*domain.FinanceRecord, error) {
	var out []*domain.FinanceRecord
	for _, rec := range r.s.finance {
		if !date.IsZero() && !rec.Date.Truncate(24*time.Hour).Equal(date.Truncate(24*time.Hour)) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memFinanceRepo) MonthStats(context.Context, int) ([]domain.FinanceMonthStats, error) {
	return nil, nil
}

// --- ports.OrderRepository ---

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	clone := *o
	clone.ID = r.s.id()
	r.s.orders = append(r.s.orders, &clone)
	out := clone
	return &out, nil
}

func (r *memOrderRepo) List(context.Context) ([]*domain.Order, error) {
	return r.s.orders, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	for _, o := range r.s.orders {
		if o.OrderID == orderID {
			o.Status = status
			o.UpdatedAt = time.Now().UTC()
			clone := *o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *memOrderRepo) RevenueSince(_ context.Context, from time.Time) (float64, error) {
	var total float64
	for _, o := range r.s.orders {
		if !o.CreatedAt.Before(from) {
			total += o.TotalAmount
		}
	}
	return total, nil
}

// --- order queue ---

type noopQueue struct{}

func (noopQueue) Enqueue(ports.OrderPlacedInput) {}

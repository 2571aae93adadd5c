package appointment

import (
	"context"
	"sync"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeRepo guarda tudo em memória e reproduz a semântica do repositório
// real: varredura de conflito meio-aberta sobre status bloqueantes e
// bloqueios de agenda. Métodos não implementados vêm da interface
// embutida e explodem se chamados.
type fakeRepo struct {
	domain.Repository

	mu sync.Mutex

	salons        map[uint]*models.Salon
	professionals map[uint]*models.Professional
	services      map[uint]*models.Service
	customers     []*models.Customer
	appointments  map[uint]*models.Appointment
	blocks        []*models.TimeBlock

	visits map[uint]int
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:        map[uint]*models.Salon{},
		professionals: map[uint]*models.Professional{},
		services:      map[uint]*models.Service{},
		appointments:  map[uint]*models.Appointment{},
		visits:        map[uint]int{},
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) GetSalonByID(_ context.Context, salonID uint) (*models.Salon, error) {
	if s, ok := f.salons[salonID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetProfessional(_ context.Context, salonID, professionalID uint) (*models.Professional, error) {
	if p, ok := f.professionals[professionalID]; ok && p.SalonID == salonID {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok && s.SalonID == salonID {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetOrCreateCustomer(
	_ context.Context,
	salonID uint,
	name, phone, email string,
) (*models.Customer, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.customers {
		if c.SalonID != salonID {
			continue
		}
		if email != "" && c.Email == email {
			return c, nil
		}
		if email == "" && phone != "" && c.Phone == phone {
			return c, nil
		}
	}

	c := &models.Customer{
		ID:      f.id(),
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}
	f.customers = append(f.customers, c)
	return c, nil
}

func (f *fakeRepo) IncrementCustomerVisits(_ context.Context, _ uint, customerID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits[customerID]++
	return nil
}

func (f *fakeRepo) assertBookable(ap *models.Appointment, excludeID uint) error {
	for _, other := range f.appointments {
		if other.ID == excludeID || other.SalonID != ap.SalonID || other.ProfessionalID != ap.ProfessionalID {
			continue
		}
		if other.DeletedAt != nil || !domain.Blocking(domain.Status(other.Status)) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	for _, b := range f.blocks {
		if b.SalonID != ap.SalonID || b.ProfessionalID != ap.ProfessionalID {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, b.StartTime, b.EndTime) {
			return httperr.ErrBusiness("time_block_conflict")
		}
	}

	return nil
}

func (f *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.assertBookable(ap, 0); err != nil {
		return err
	}

	ap.ID = f.id()
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) SaveAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.assertBookable(ap, ap.ID); err != nil {
		return err
	}

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ap, ok := f.appointments[appointmentID]; ok && ap.SalonID == salonID && ap.DeletedAt == nil {
		cp := *ap
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

// ======================================================
// SEEDS
// ======================================================

func (f *fakeRepo) seedSalon(autoApprove bool) *models.Salon {
	s := &models.Salon{
		ID:          f.id(),
		Name:        "Studio Norte",
		Slug:        "studio-norte",
		Timezone:    "UTC",
		AutoApprove: autoApprove,
	}
	f.salons[s.ID] = s
	return s
}

func (f *fakeRepo) seedProfessional(salonID uint) *models.Professional {
	p := &models.Professional{
		ID:      f.id(),
		SalonID: salonID,
		Name:    "Marina",
		Active:  true,
	}
	f.professionals[p.ID] = p
	return p
}

func (f *fakeRepo) seedService(salonID uint, durationMin int, price float64) *models.Service {
	s := &models.Service{
		ID:          f.id(),
		SalonID:     salonID,
		Name:        "Corte",
		DurationMin: durationMin,
		Price:       price,
		Active:      true,
	}
	f.services[s.ID] = s
	return s
}

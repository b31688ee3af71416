package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/infrastructure/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(seed.Doctors())

	tests := []struct {
		name    string
		filter  *entity.DoctorFilter
		wantIDs []string
	}{
		{"nil filter", nil, []string{"d1", "d2", "d3", "d4", "d5"}},
		{"wildcards", &entity.DoctorFilter{Status: entity.FilterAll}, []string{"d1", "d2", "d3", "d4", "d5"}},
		{"search by specialization", &entity.DoctorFilter{Search: "neuro"}, []string{"d2"}},
		{"search by name is case insensitive", &entity.DoctorFilter{Search: "CHEN"}, []string{"d3"}},
		{"inactive only", &entity.DoctorFilter{Status: "inactive"}, []string{"d4"}},
		{"search and status", &entity.DoctorFilter{Search: "dr.", Status: "active"}, []string{"d1", "d2", "d3", "d5"}},
		{"no match", &entity.DoctorFilter{Search: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctors, err := repo.FindAll(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(doctors))
			for _, d := range doctors {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDoctorRepository_CreateAssignsNextID(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(seed.Doctors())

	doctor := &entity.Doctor{Name: "Dr. Ana Lopez", Specialization: "Oncology", Status: entity.DoctorStatusActive}
	require.NoError(t, repo.Create(ctx, doctor))
	assert.Equal(t, "d6", doctor.ID)

	_, err := repo.Delete(ctx, "d6")
	require.NoError(t, err)

	next := &entity.Doctor{Name: "Dr. Lee"}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, "d7", next.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestDoctorRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(seed.Doctors())

	updated, err := repo.Update(ctx, "d4", func(d entity.Doctor) entity.Doctor {
		d.Status = entity.DoctorStatusActive
		return d
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.DoctorStatusActive, updated.Status)
	assert.Equal(t, "Dr. Emily Rodriguez", updated.Name)

	missing, err := repo.Update(ctx, "d99", func(d entity.Doctor) entity.Doctor { return d })
	require.NoError(t, err)
	assert.Nil(t, missing)

	affected, err := repo.Delete(ctx, "d99")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	affected, err = repo.Delete(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.FindByID(ctx, "d1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDoctorRepository_ListIsNotAffectedByLaterWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewDoctorRepository(seed.Doctors())

	before, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)

	_, err = repo.Update(ctx, "d1", func(d entity.Doctor) entity.Doctor {
		d.Name = "renamed"
		return d
	})
	require.NoError(t, err)

	assert.Equal(t, "Dr. John Smith", before[0].Name)
}

func TestSlotRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(seed.Slots())

	slots, err := repo.FindAll(ctx, &entity.SlotFilter{DoctorID: "d1", Date: "2025-03-15"})
	require.NoError(t, err)
	assert.Len(t, slots, 3)

	slots, err = repo.FindAll(ctx, &entity.SlotFilter{Search: "pm"})
	require.NoError(t, err)
	assert.Len(t, slots, 3)

	slots, err = repo.FindAll(ctx, &entity.SlotFilter{DoctorID: entity.FilterAll})
	require.NoError(t, err)
	assert.Len(t, slots, 10)
}

func TestSlotRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(seed.Slots())

	booked, err := repo.CountByStatus(ctx, entity.SlotStatusBooked)
	require.NoError(t, err)
	assert.Equal(t, 3, booked)

	available, err := repo.CountByStatus(ctx, entity.SlotStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 7, available)
}

func TestSlotRepository_CreateContinuesAfterSeed(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(seed.Slots())

	slot := &entity.Slot{DoctorID: "d2", DoctorName: "Dr. Sarah Johnson", Date: "2025-03-18", Time: "9:00 AM", Status: entity.SlotStatusAvailable}
	require.NoError(t, repo.Create(ctx, slot))
	assert.Equal(t, "s11", slot.ID)
}

func TestAppointmentRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(seed.Appointments())

	tests := []struct {
		name   string
		filter *entity.AppointmentFilter
		want   int
	}{
		{"all", &entity.AppointmentFilter{Status: entity.FilterAll, DoctorID: entity.FilterAll}, 7},
		{"cancelled", &entity.AppointmentFilter{Status: "cancelled"}, 1},
		{"confirmed", &entity.AppointmentFilter{Status: "confirmed"}, 4},
		{"doctor d1", &entity.AppointmentFilter{DoctorID: "d1"}, 2},
		{"date", &entity.AppointmentFilter{Date: "2025-03-14"}, 3},
		{"patient search", &entity.AppointmentFilter{Search: "james"}, 2},
		{"doctor name search", &entity.AppointmentFilter{Search: "sarah"}, 2},
		{"combined", &entity.AppointmentFilter{Search: "james", DoctorID: "d3"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointments, err := repo.FindAll(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, appointments, tt.want)
		})
	}
}

func TestPatientRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository(seed.Patients())

	patients, err := repo.FindAll(ctx, &entity.PatientFilter{Search: "555-345"})
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "p3", patients[0].ID)

	patients, err = repo.FindAll(ctx, &entity.PatientFilter{Search: "EXAMPLE.COM"})
	require.NoError(t, err)
	assert.Len(t, patients, 6)

	patient, err := repo.FindByID(ctx, "p99")
	require.NoError(t, err)
	assert.Nil(t, patient)
}

func TestNotificationRepository_TabsAndTypes(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(seed.Notifications())

	unread, err := repo.FindAll(ctx, &entity.NotificationFilter{Tab: entity.NotificationTabUnread})
	require.NoError(t, err)
	assert.Len(t, unread, 3)

	system, err := repo.FindAll(ctx, &entity.NotificationFilter{Tab: entity.NotificationTabAll, Type: "system"})
	require.NoError(t, err)
	assert.Len(t, system, 2)

	unreadSystem, err := repo.FindAll(ctx, &entity.NotificationFilter{Tab: entity.NotificationTabUnread, Type: "system"})
	require.NoError(t, err)
	require.Len(t, unreadSystem, 1)
	assert.Equal(t, "n3", unreadSystem[0].ID)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(seed.Notifications())

	n, err := repo.MarkRead(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.True(t, n.Read)

	count, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	marked, err := repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	count, err = repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	all, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestNotificationRepository_ConcurrentMarkAllReadCountsOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(seed.Notifications())

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			marked, err := repo.MarkAllRead(ctx)
			assert.NoError(t, err)
			mu.Lock()
			total += marked
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, total)
	count, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestHospitalProfileRepository_SaveIsolatesCaller(t *testing.T) {
	ctx := context.Background()
	repo := NewHospitalProfileRepository(seed.HospitalProfile())

	profile, err := repo.Get(ctx)
	require.NoError(t, err)
	profile.Facilities[0] = "mutated"

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Facilities[0])

	profile.Name = "Harbor Clinic"
	require.NoError(t, repo.Save(ctx, profile))
	profile.Name = "after save"

	saved, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Harbor Clinic", saved.Name)
}

func TestMemoryTable_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewSlotRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &entity.Slot{DoctorID: "d1"})
		}()
	}
	wg.Wait()

	slots, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 50)

	seen := map[string]bool{}
	for _, s := range slots {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestMemoryAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAuditLogRepository()

	first := &entity.AuditLog{Action: entity.AuditActionDoctorCreate}
	second := &entity.AuditLog{Action: entity.AuditActionDoctorDelete}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	logs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditActionDoctorDelete, logs[0].Action)

	found, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.AuditActionDoctorCreate, found.Action)

	missing, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Minute, time.Minute)

	exists, err := repo.Exists(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Store(ctx, "tok", time.Minute))
	exists, err = repo.Exists(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Revoke(ctx, "tok"))
	exists, err = repo.Exists(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, exists)
}

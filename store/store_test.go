package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"swimtrack/config"
	"swimtrack/database"
	"swimtrack/models"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	cfg := &config.Config{
		DBDriver:      "sqlite",
		DBDSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		SaltRound:     bcrypt.MinCost,
		AdminAccount:  "admin",
		AdminPassword: "admin123",
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	return New(db)
}

func mustCreateCoach(t *testing.T, st Store, name, account string) *models.Coach {
	t.Helper()
	coach := &models.Coach{ID: uuid.NewString(), Name: name, Account: account, PasswordHash: "x"}
	require.NoError(t, st.CreateCoach(coach))
	return coach
}

func mustCreateStudent(t *testing.T, st Store, name, account string) *models.Student {
	t.Helper()
	student := &models.Student{ID: uuid.NewString(), Name: name, Account: account, PasswordHash: "x"}
	require.NoError(t, st.CreateStudent(student))
	return student
}

func mustCreateEnrollment(t *testing.T, st Store, studentID, coachID string, lessons int, salary int64) *models.Enrollment {
	t.Helper()
	enr := &models.Enrollment{
		ID:               uuid.NewString(),
		StudentID:        studentID,
		CoachID:          coachID,
		CourseName:       "Freestyle Basics",
		TotalLessons:     lessons,
		RemainingLessons: lessons,
		SalaryWhenDone:   salary,
	}
	require.NoError(t, st.CreateEnrollment(enr))
	return enr
}

func newPending(enr *models.Enrollment, studentName string) *models.PendingAttendance {
	return &models.PendingAttendance{
		ID:           uuid.NewString(),
		EnrollmentID: enr.ID,
		StudentID:    enr.StudentID,
		CoachID:      enr.CoachID,
		CourseName:   enr.CourseName,
		StudentName:  studentName,
		RequestedAt:  time.Now(),
	}
}

func TestAccountUniquenessAcrossPrincipals(t *testing.T) {
	st := newTestStore(t)

	// the admin seed already holds "admin"
	err := st.CreateCoach(&models.Coach{ID: uuid.NewString(), Name: "Sam", Account: "admin", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	coach := mustCreateCoach(t, st, "Sam", "sam")
	student := mustCreateStudent(t, st, "Kim", "kim")

	// cross-kind collisions
	err = st.CreateStudent(&models.Student{ID: uuid.NewString(), Name: "Other", Account: "sam", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)
	err = st.CreateCoach(&models.Coach{ID: uuid.NewString(), Name: "Other", Account: "kim", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	// renames collide the same way
	assert.ErrorIs(t, st.UpdateStudentAccount(student.ID, "sam"), ErrDuplicateAccount)
	assert.ErrorIs(t, st.UpdateCoachAccount(coach.ID, "admin"), ErrDuplicateAccount)

	// renaming to your own current account is not a collision
	require.NoError(t, st.UpdateCoachAccount(coach.ID, "sam"))

	// case-sensitive exact match: "Sam" is free
	require.NoError(t, st.UpdateCoachAccount(coach.ID, "Sam"))

	admin, err := st.GetAdmin()
	require.NoError(t, err)
	assert.ErrorIs(t, st.UpdateAdminAccount(admin.ID, "kim"), ErrDuplicateAccount)
	require.NoError(t, st.UpdateAdminAccount(admin.ID, "root"))
}

func TestConfirmFlowAccruesExactlyOnce(t *testing.T) {
	st := newTestStore(t)
	coach := mustCreateCoach(t, st, "Sam", "sam")
	student := mustCreateStudent(t, st, "Kim", "kim")
	enr := mustCreateEnrollment(t, st, student.ID, coach.ID, 3, 300)

	for i, wantRemaining := range []int{2, 1, 0} {
		p := newPending(enr, student.Name)
		require.NoError(t, st.CreatePending(p))

		res, err := st.ConfirmPending(p)
		require.NoError(t, err, "confirm %d", i+1)
		assert.Equal(t, wantRemaining, res.Remaining)
		assert.Equal(t, wantRemaining == 0, res.Completed)

		earned, err := st.CoachEarned(coach.ID)
		require.NoError(t, err)
		if wantRemaining > 0 {
			assert.Zero(t, earned, "no accrual before completion")
		} else {
			assert.Equal(t, int64(300), earned)
		}
	}

	got, err := st.GetEnrollment(enr.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RemainingLessons)

	details, err := st.SalaryDetails(coach.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, int64(300), details[0].Amount)
	assert.Equal(t, "Kim", details[0].StudentName)

	records, err := st.AttendanceRecords(coach.ID, "", "")
	require.NoError(t, err)
	assert.Len(t, records, 3)

	completed, err := st.CompletedEnrollments(coach.ID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Kim", completed[0].StudentName)

	// settlement zeroes and purges
	amount, err := st.SettleCoach(coach.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), amount)

	earned, err := st.CoachEarned(coach.ID)
	require.NoError(t, err)
	assert.Zero(t, earned)

	details, err = st.SalaryDetails(coach.ID)
	require.NoError(t, err)
	assert.Empty(t, details)

	completed, err = st.CompletedEnrollments(coach.ID)
	require.NoError(t, err)
	assert.Empty(t, completed)

	// attendance history survives settlement
	records, err = st.AttendanceRecords(coach.ID, "", "")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestConfirmOnExhaustedEnrollmentDiscardsPending(t *testing.T) {
	st := newTestStore(t)
	coach := mustCreateCoach(t, st, "Sam", "sam")
	student := mustCreateStudent(t, st, "Kim", "kim")
	enr := mustCreateEnrollment(t, st, student.ID, coach.ID, 1, 500)

	// consume the only lesson
	p1 := newPending(enr, student.Name)
	require.NoError(t, st.CreatePending(p1))
	_, err := st.ConfirmPending(p1)
	require.NoError(t, err)

	// a stale pending raced in before remaining hit zero
	stale := newPending(enr, student.Name)
	require.NoError(t, st.CreatePending(stale))

	_, err = st.ConfirmPending(stale)
	assert.ErrorIs(t, err, ErrLedgerExhausted)

	// pending discarded, nothing else moved
	_, err = st.GetPending(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := st.GetEnrollment(enr.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RemainingLessons)

	earned, err := st.CoachEarned(coach.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), earned, "only the first completion accrued")

	records, err := st.AttendanceRecords(coach.ID, "", "")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	details, err := st.SalaryDetails(coach.ID)
	require.NoError(t, err)
	assert.Len(t, details, 1)
}

func TestSecondRequestRejectedWhilePending(t *testing.T) {
	st := newTestStore(t)
	coach := mustCreateCoach(t, st, "Sam", "sam")
	student := mustCreateStudent(t, st, "Kim", "kim")
	enr := mustCreateEnrollment(t, st, student.ID, coach.ID, 3, 0)

	p1 := newPending(enr, student.Name)
	require.NoError(t, st.CreatePending(p1))

	p2 := newPending(enr, student.Name)
	assert.ErrorIs(t, st.CreatePending(p2), ErrPendingExists)

	// first pending untouched
	got, err := st.GetPending(p1.ID)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, got.ID)

	pendings, err := st.PendingByCoach(coach.ID)
	require.NoError(t, err)
	assert.Len(t, pendings, 1)
}

func TestDeleteCoachCascades(t *testing.T) {
	st := newTestStore(t)
	coach := mustCreateCoach(t, st, "Sam", "sam")
	student := mustCreateStudent(t, st, "Kim", "kim")
	enr := mustCreateEnrollment(t, st, student.ID, coach.ID, 1, 100)

	p := newPending(enr, student.Name)
	require.NoError(t, st.CreatePending(p))
	_, err := st.ConfirmPending(p)
	require.NoError(t, err)

	require.NoError(t, st.DeleteCoach(coach.ID))

	_, err = st.GetCoach(coach.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	earned, err := st.CoachEarned(coach.ID)
	require.NoError(t, err)
	assert.Zero(t, earned)

	details, err := st.SalaryDetails(coach.ID)
	require.NoError(t, err)
	assert.Empty(t, details)

	_, err = st.GetEnrollment(enr.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := st.AttendanceRecords(coach.ID, "", "")
	require.NoError(t, err)
	assert.Empty(t, records, "coach delete destroys attendance history")

	// the account is free again
	require.NoError(t, st.CreateCoach(&models.Coach{ID: uuid.NewString(), Name: "New", Account: "sam", PasswordHash: "x"}))
}

func TestDeleteStudentCascades(t *testing.T) {
	st := newTestStore(t)
	coach := mustCreateCoach(t, st, "Sam", "sam")
	student := mustCreateStudent(t, st, "Kim", "kim")
	enr := mustCreateEnrollment(t, st, student.ID, coach.ID, 2, 100)

	p := newPending(enr, student.Name)
	require.NoError(t, st.CreatePending(p))

	require.NoError(t, st.DeleteStudent(student.ID))

	_, err := st.GetStudent(student.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.GetEnrollment(enr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.GetPending(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// coach and its payroll row are untouched
	_, err = st.GetCoach(coach.ID)
	require.NoError(t, err)
}

func TestListEnrollmentsRoleScoping(t *testing.T) {
	st := newTestStore(t)
	coach := mustCreateCoach(t, st, "Sam", "sam")
	otherCoach := mustCreateCoach(t, st, "Lee", "lee")
	student := mustCreateStudent(t, st, "Kim", "kim")

	mustCreateEnrollment(t, st, student.ID, coach.ID, 3, 100)
	mustCreateEnrollment(t, st, student.ID, otherCoach.ID, 5, 200)

	all, err := st.ListEnrollments(models.RoleAdmin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Kim", all[0].StudentName)
	assert.Equal(t, "Sam", all[0].CoachName)

	mine, err := st.ListEnrollments(models.RoleCoach, coach.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, coach.ID, mine[0].CoachID)
	assert.Equal(t, "Kim", mine[0].StudentName)

	own, err := st.ListEnrollments(models.RoleStudent, student.ID)
	require.NoError(t, err)
	assert.Len(t, own, 2)
	assert.Equal(t, "Sam", own[0].CoachName)
}

func TestAttendanceRecordsDateFilter(t *testing.T) {
	st := newTestStore(t)
	coach := mustCreateCoach(t, st, "Sam", "sam")
	student := mustCreateStudent(t, st, "Kim", "kim")
	enr := mustCreateEnrollment(t, st, student.ID, coach.ID, 2, 0)

	for i := 0; i < 2; i++ {
		p := newPending(enr, student.Name)
		require.NoError(t, st.CreatePending(p))
		_, err := st.ConfirmPending(p)
		require.NoError(t, err)
	}

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	rows, err := st.AttendanceRecords(coach.ID, today, today)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "inclusive bounds keep today's records")

	rows, err = st.AttendanceRecords(coach.ID, tomorrow, "")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = st.AttendanceRecords(coach.ID, "", today)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

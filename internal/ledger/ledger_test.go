package ledger

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-coin/internal/repository"
)

var couponPattern = regexp.MustCompile(`^COUPON-\d+-\d+-\d+-\d+$`)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	store, err := Open(path, slog.Default())
	require.NoError(t, err)
	return store, path
}

func TestOpen_SeedsDefaults(t *testing.T) {
	// Arrange + Act
	store, _ := openTestStore(t)

	// Assert
	students := store.ListStudents()
	require.Len(t, students, 1)
	assert.Equal(t, "Ana Lima", students[0].Name)
	assert.Equal(t, 1250, students[0].CoinBalance)

	_, ok := store.FindUserByLogin("prof@uni.br")
	assert.True(t, ok)
}

func TestOpen_RecoversFromMalformedFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	// Act
	store, err := Open(path, slog.Default())

	// Assert
	require.NoError(t, err)
	assert.Len(t, store.ListStudents(), 1)
}

func TestOpen_IsIdempotentAcrossRestarts(t *testing.T) {
	// Arrange
	store, path := openTestStore(t)
	users := len(store.db.Users)

	// Act: reopen the same file, seeds must not duplicate
	reopened, err := Open(path, slog.Default())
	require.NoError(t, err)

	// Assert
	assert.Len(t, reopened.db.Users, users)
	assert.Len(t, reopened.ListStudents(), 1)
}

func TestSendCoins_CreditsAndRecordsBothSides(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)
	st, err := store.CreateStudent(Student{Name: "João", Email: "joao@uni.br", CoinBalance: 50})
	require.NoError(t, err)

	// Act
	require.NoError(t, store.SendCoins(4, st.ID, 100, "Projeto final"))

	// Assert
	updated, err := store.GetStudent(st.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, updated.CoinBalance)

	txs := store.ListTransactions()
	require.Len(t, txs, 2)
	assert.Equal(t, KindProfessorSend, txs[0].Kind)
	assert.Equal(t, KindStudentReceive, txs[1].Kind)
	assert.Equal(t, txs[0].ID+1, txs[1].ID)
	assert.Equal(t, txs[0].Amount, txs[1].Amount)
	assert.Equal(t, txs[0].Date, txs[1].Date)
}

func TestSendCoins_ClampsNegativeAmount(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)

	// Act
	require.NoError(t, store.SendCoins(4, 1, -500, "typo"))

	// Assert
	st, err := store.GetStudent(1)
	require.NoError(t, err)
	assert.Equal(t, 1250, st.CoinBalance)
}

func TestRedeem_DebitsCostAndIssuesCoupon(t *testing.T) {
	// Arrange: seed student holds 1250
	store, _ := openTestStore(t)
	adv, err := store.CreateAdvantage(3, Advantage{Description: "Meia-entrada no cinema", CoinCost: 500, CompanyName: "Empresa Ex"})
	require.NoError(t, err)

	// Act
	resp, err := store.Redeem(adv.ID, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 750, resp.NewBalance)
	assert.Regexp(t, couponPattern, resp.CouponCode)
	assert.Equal(t, "Ana Lima", resp.StudentName)
	assert.Equal(t, "Empresa Ex", resp.CompanyName)

	txs := store.TransactionsByKind(KindStudentRedeem)
	require.Len(t, txs, 1)
	assert.Equal(t, 500, txs[0].Amount)
}

func TestRedeem_CouponsAreUnique(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)
	adv, err := store.CreateAdvantage(3, Advantage{Description: "Café grátis", CoinCost: 100})
	require.NoError(t, err)

	// Act
	first, err := store.Redeem(adv.ID, 1)
	require.NoError(t, err)
	second, err := store.Redeem(adv.ID, 1)
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first.CouponCode, second.CouponCode)
}

func TestRedeem_InsufficientBalanceLeavesLedgerUntouched(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)
	st, err := store.CreateStudent(Student{Name: "João", Email: "joao@uni.br", CoinBalance: 100})
	require.NoError(t, err)
	adv, err := store.CreateAdvantage(3, Advantage{Description: "Curso", CoinCost: 500})
	require.NoError(t, err)

	// Act
	_, err = store.Redeem(adv.ID, st.ID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)

	unchanged, gerr := store.GetStudent(st.ID)
	require.NoError(t, gerr)
	assert.Equal(t, 100, unchanged.CoinBalance)
	assert.Empty(t, store.TransactionsByKind(KindStudentRedeem))
}

func TestRedeem_UnknownIdsReportNotFound(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)

	// Act + Assert
	_, err := store.Redeem(99, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	adv, cerr := store.CreateAdvantage(3, Advantage{Description: "Curso", CoinCost: 10})
	require.NoError(t, cerr)
	_, err = store.Redeem(adv.ID, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	// Arrange
	store, path := openTestStore(t)
	adv, err := store.CreateAdvantage(3, Advantage{Description: "Meia-entrada", CoinCost: 500})
	require.NoError(t, err)
	_, err = store.Redeem(adv.ID, 1)
	require.NoError(t, err)

	// Act
	reopened, err := Open(path, slog.Default())
	require.NoError(t, err)

	// Assert
	st, err := reopened.GetStudent(1)
	require.NoError(t, err)
	assert.Equal(t, 750, st.CoinBalance)
	assert.Len(t, reopened.TransactionsByKind(KindStudentRedeem), 1)
}

func TestLogin_MatchesLoginOrEmailAndIgnoresPassword(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)

	// Act
	byEmail, err := store.Login("ana@uni.br", "whatever")
	require.NoError(t, err)
	_, missErr := store.Login("ghost@uni.br", "demo")

	// Assert
	assert.Equal(t, "Ana Lima", byEmail.Name)
	assert.Equal(t, RoleStudent, byEmail.Role)
	assert.ErrorIs(t, missErr, repository.ErrUserNotFound)
}

func TestCreateProfessor_DuplicateLoginGetsSuffix(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)

	// Act
	user, err := store.CreateProfessor("Outro Prof", "prof@uni.br", "prof@uni.br", "demo")

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, "prof@uni.br", user.Login)
	assert.Regexp(t, `^prof@uni\.br\.\d+$`, user.Login)
}

func TestReset_RestoresDefaults(t *testing.T) {
	// Arrange
	store, _ := openTestStore(t)
	_, err := store.CreateAdvantage(3, Advantage{Description: "Curso", CoinCost: 10})
	require.NoError(t, err)

	// Act
	require.NoError(t, store.Reset())

	// Assert
	assert.Empty(t, store.ListAdvantages())
	st, err := store.GetStudent(1)
	require.NoError(t, err)
	assert.Equal(t, 1250, st.CoinBalance)
}

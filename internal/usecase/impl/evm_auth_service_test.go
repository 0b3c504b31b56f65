package impl

import (
	"context"
	"testing"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	mockRepo "authhub/internal/mocks/repository"
	mockService "authhub/internal/mocks/service"
	"authhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAddress = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

type evmFixture struct {
	srv       *evmAuthService
	repo      *mockRepo.MockIdentityRepository
	chains    *mockService.MockChainClientResolver
	client    *mockService.MockChainClient
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockAuthMetrics
}

func newEVMFixture(t *testing.T) *evmFixture {
	f := &evmFixture{
		repo:      mockRepo.NewMockIdentityRepository(t),
		chains:    mockService.NewMockChainClientResolver(t),
		client:    mockService.NewMockChainClient(t),
		publisher: mockService.NewMockEventPublisher(t),
		metrics:   mockService.NewMockAuthMetrics(t),
	}

	srv := NewEVMAuthService(EVMAuthServiceParams{
		IdentityRepo: f.repo,
		Chains:       f.chains,
		Publisher:    f.publisher,
		Metrics:      f.metrics,
		Logger:       newDiscardLogger(),
	}).(*evmAuthService)
	srv.now = fixedClock
	srv.newNonce = func() (string, error) { return "abcdefgh12345678Z", nil }
	f.srv = srv

	return f
}

func TestEVMAuthService_Nonce_OverwritesPrevious(t *testing.T) {
	f := newEVMFixture(t)
	sess := newTestSession()
	sess.IssueNonce("oldnonce12345678")

	nonce, err := f.srv.Nonce(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, "abcdefgh12345678Z", nonce)
	assert.Equal(t, nonce, sess.Nonce())
}

func TestEVMAuthService_Verify_Success_NewIdentity(t *testing.T) {
	f := newEVMFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.IssueNonce("abcdefgh12345678Z")
	message := siweMessage(testAddress, 137, "abcdefgh12345678Z")
	identity := &entity.Identity{ID: "id-1", Role: entity.RoleUser, Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"}

	f.chains.EXPECT().Client(uint64(137)).Return(f.client, nil)
	f.client.EXPECT().VerifyMessage(ctx, testAddress, message, "0xsig").Return(true, nil)
	f.repo.EXPECT().FindOrCreateByAddress(ctx, "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2").Return(identity, true, nil)
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeSuccess).Return()
	f.publisher.EXPECT().PublishAuthEvent(ctx, mock.MatchedBy(func(e *service.AuthEvent) bool {
		return e.Type == service.AuthEventIdentityCreated && e.IdentityID == "id-1"
	})).Return(nil)
	f.publisher.EXPECT().PublishAuthEvent(ctx, mock.MatchedBy(func(e *service.AuthEvent) bool {
		return e.Type == service.AuthEventSessionAuthenticated && e.Provider == "evm"
	})).Return(nil)

	output, err := f.srv.Verify(ctx, sess, &usecase.EVMVerifyInput{Message: message, Signature: "0xsig"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, identity.Address, sess.Principal.Address)
	assert.Equal(t, entity.RoleUser, sess.Role())
	assert.Empty(t, sess.Nonce(), "nonce must be single-use")
	assert.True(t, sess.NeedsRegeneration())
}

func TestEVMAuthService_Verify_AdoptsExistingRole(t *testing.T) {
	f := newEVMFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.IssueNonce("abcdefgh12345678Z")
	message := siweMessage(testAddress, 137, "abcdefgh12345678Z")
	identity := &entity.Identity{ID: "id-9", Role: entity.RoleAdmin, Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"}

	f.chains.EXPECT().Client(uint64(137)).Return(f.client, nil)
	f.client.EXPECT().VerifyMessage(ctx, testAddress, message, "0xsig").Return(true, nil)
	f.repo.EXPECT().FindOrCreateByAddress(ctx, mock.Anything).Return(identity, false, nil)
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeSuccess).Return()
	f.publisher.EXPECT().PublishAuthEvent(ctx, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := f.srv.Verify(ctx, sess, &usecase.EVMVerifyInput{Message: message, Signature: "0xsig"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, sess.Role())
}

func TestEVMAuthService_Verify_InvalidSignatureDestroysSession(t *testing.T) {
	f := newEVMFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.IssueNonce("abcdefgh12345678Z")
	message := siweMessage(testAddress, 137, "abcdefgh12345678Z")

	f.chains.EXPECT().Client(uint64(137)).Return(f.client, nil)
	f.client.EXPECT().VerifyMessage(ctx, testAddress, message, "0xbad").Return(false, nil)
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeRejected).Return()

	_, err := f.srv.Verify(ctx, sess, &usecase.EVMVerifyInput{Message: message, Signature: "0xbad"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
	assert.True(t, sess.Destroyed())
	assert.False(t, sess.IsAuthenticated())
}

func TestEVMAuthService_Verify_NonceMismatchKeepsSession(t *testing.T) {
	f := newEVMFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.IssueNonce("currentnonce12345")
	message := siweMessage(testAddress, 137, "stalenonce1234567")

	f.chains.EXPECT().Client(uint64(137)).Return(f.client, nil)
	f.client.EXPECT().VerifyMessage(ctx, testAddress, message, "0xsig").Return(true, nil)
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeRejected).Return()

	_, err := f.srv.Verify(ctx, sess, &usecase.EVMVerifyInput{Message: message, Signature: "0xsig"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidNonce)
	assert.Equal(t, domainerrors.KindInvalidNonce, domainerrors.KindOf(err))
	assert.False(t, sess.Destroyed())
	assert.Equal(t, "currentnonce12345", sess.Nonce())
}

func TestEVMAuthService_Verify_ReplayAfterSuccess(t *testing.T) {
	f := newEVMFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.IssueNonce("abcdefgh12345678Z")
	message := siweMessage(testAddress, 137, "abcdefgh12345678Z")
	identity := &entity.Identity{ID: "id-1", Role: entity.RoleUser, Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"}

	f.chains.EXPECT().Client(uint64(137)).Return(f.client, nil).Times(2)
	f.client.EXPECT().VerifyMessage(ctx, testAddress, message, "0xsig").Return(true, nil).Times(2)
	f.repo.EXPECT().FindOrCreateByAddress(ctx, mock.Anything).Return(identity, false, nil).Once()
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeSuccess).Return().Once()
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeRejected).Return().Once()
	f.publisher.EXPECT().PublishAuthEvent(ctx, mock.Anything).Return(nil).Once()

	input := &usecase.EVMVerifyInput{Message: message, Signature: "0xsig"}
	_, err := f.srv.Verify(ctx, sess, input)
	require.NoError(t, err)

	_, err = f.srv.Verify(ctx, sess, input)
	require.ErrorIs(t, err, domainerrors.ErrInvalidNonce)
}

func TestEVMAuthService_Verify_UnsupportedChain(t *testing.T) {
	f := newEVMFixture(t)
	sess := newTestSession()
	sess.IssueNonce("abcdefgh12345678Z")

	f.chains.EXPECT().Client(uint64(1)).Return(nil, service.ErrUnsupportedChain)
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeRejected).Return()

	_, err := f.srv.Verify(context.Background(), sess, &usecase.EVMVerifyInput{
		Message:   siweMessage(testAddress, 1, "abcdefgh12345678Z"),
		Signature: "0xsig",
	})

	require.ErrorIs(t, err, domainerrors.ErrUnsupportedChain)
	assert.False(t, sess.Destroyed())
}

func TestEVMAuthService_Verify_MalformedMessage(t *testing.T) {
	f := newEVMFixture(t)
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeRejected).Return()

	_, err := f.srv.Verify(context.Background(), newTestSession(), &usecase.EVMVerifyInput{Message: "hello", Signature: "0xsig"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidSIWEMessage)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
}

func TestEVMAuthService_Verify_RPCFailure(t *testing.T) {
	f := newEVMFixture(t)
	ctx := context.Background()
	sess := newTestSession()
	sess.IssueNonce("abcdefgh12345678Z")
	message := siweMessage(testAddress, 137, "abcdefgh12345678Z")

	f.chains.EXPECT().Client(uint64(137)).Return(f.client, nil)
	f.client.EXPECT().VerifyMessage(ctx, testAddress, message, "0xsig").Return(false, errors.New("connection refused"))
	f.metrics.EXPECT().ObserveAttempt("evm", service.OutcomeError).Return()

	_, err := f.srv.Verify(ctx, sess, &usecase.EVMVerifyInput{Message: message, Signature: "0xsig"})

	assert.Equal(t, domainerrors.KindUpstream, domainerrors.KindOf(err))
	assert.False(t, sess.Destroyed())
}

func TestEVMAuthService_Session(t *testing.T) {
	f := newEVMFixture(t)
	sess := newTestSession()

	_, err := f.srv.Session(context.Background(), sess)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	sess.Authenticate(entity.Principal{IdentityID: "id-1", Role: entity.RoleSuper, Provider: entity.ProviderEVM, Address: "0xabc"})
	output, err := f.srv.Session(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, "0xabc", output.Address)
	assert.Equal(t, entity.RoleSuper, output.Role)
	assert.Equal(t, entity.SessionAuthenticated, output.Status)
}

func TestEVMAuthService_SignOut_Idempotent(t *testing.T) {
	f := newEVMFixture(t)
	sess := newTestSession()

	assert.True(t, f.srv.SignOut(context.Background(), sess).Success)
	assert.True(t, f.srv.SignOut(context.Background(), sess).Success)
	assert.True(t, sess.Destroyed())
}

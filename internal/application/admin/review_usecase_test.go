package admin_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviya/serviya-api/internal/application/admin"
	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminID  = "00000000-0000-0000-0000-00000000000a"
	clientID = "00000000-0000-0000-0000-00000000000b"
)

type fakeRoles struct{ byUser map[string][]string }

func (r *fakeRoles) GetRoles(_ context.Context, userID string) ([]string, error) {
	return r.byUser[userID], nil
}

type memRequestRepo struct{ byID map[int64]*entity.VerificationRequest }

func (r *memRequestRepo) Create(_ context.Context, req *entity.VerificationRequest) error {
	r.byID[req.ID] = req
	return nil
}

func (r *memRequestRepo) GetByID(_ context.Context, id int64) (*entity.VerificationRequest, error) {
	return r.byID[id], nil
}

func (r *memRequestRepo) ListByEstado(_ context.Context, estado string) ([]*entity.VerificationRequest, error) {
	var out []*entity.VerificationRequest
	for _, req := range r.byID {
		if req.Estado == estado {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memRequestRepo) UpdateDecision(_ context.Context, id int64, estado string, reviewedAt time.Time, comentario *string) error {
	req, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	req.Estado = estado
	req.FechaRevision = &reviewedAt
	req.Comentario = comentario
	return nil
}

type memProfileRepo struct{ byID map[int64]*entity.CompanyProfile }

func (r *memProfileRepo) Create(_ context.Context, p *entity.CompanyProfile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id int64) (*entity.CompanyProfile, error) {
	return r.byID[id], nil
}

func (r *memProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.CompanyProfile, error) {
	for _, p := range r.byID {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProfileRepo) FindByName(context.Context, string, string) (*entity.CompanyProfile, error) {
	return nil, nil
}

func (r *memProfileRepo) SetVerified(_ context.Context, id int64, at time.Time) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Verificado = true
	p.Estado = entity.ProfileEstadoActivo
	p.FechaVerificacion = &at
	return nil
}

type memDocRepo struct{ byRequest map[int64][]*entity.Document }

func (r *memDocRepo) Create(_ context.Context, d *entity.Document) error {
	r.byRequest[d.RequestID] = append(r.byRequest[d.RequestID], d)
	return nil
}

func (r *memDocRepo) ListByRequest(_ context.Context, requestID int64) ([]*entity.Document, error) {
	return r.byRequest[requestID], nil
}

// passthroughTx ejecuta fn directamente sobre los repos compartidos. La atomicidad
// real la aporta la implementación de pgx; aquí solo interesa la lógica de decisión.
type passthroughTx struct {
	requests *memRequestRepo
	profiles *memProfileRepo
}

func (t *passthroughTx) RunReview(ctx context.Context, fn func(
	requestRepo repository.VerificationRequestRepository,
	profileRepo repository.CompanyProfileRepository,
) error) error {
	return fn(t.requests, t.profiles)
}

// fixture arma un caso de uso con una solicitud pendiente (id 1) sobre el perfil 10.
func fixture() (*admin.ReviewUseCase, *memRequestRepo, *memProfileRepo) {
	requests := &memRequestRepo{byID: map[int64]*entity.VerificationRequest{
		1: {ID: 1, ProfileID: 10, Estado: entity.SolicitudPendiente, FechaSolicitud: time.Now()},
	}}
	profiles := &memProfileRepo{byID: map[int64]*entity.CompanyProfile{
		10: {ID: 10, UserID: clientID, RazonSocial: "Limpieza Total SRL", Estado: entity.ProfileEstadoPendiente},
	}}
	docs := &memDocRepo{byRequest: map[int64][]*entity.Document{
		1: {{ID: 1, RequestID: 1, DocumentTypeID: 2, EstadoRevision: entity.SolicitudPendiente, FileURL: "https://s3/doc1.pdf"}},
	}}
	roles := &fakeRoles{byUser: map[string][]string{
		adminID:  {entity.RoleAdmin},
		clientID: {entity.RoleCliente},
	}}
	uc := admin.NewReviewUseCase(&passthroughTx{requests: requests, profiles: profiles}, roles, requests, profiles, docs)
	return uc, requests, profiles
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la máquina de estados de revisión
// ──────────────────────────────────────────────────────────────────────────────

func TestReview_SinRolAdmin_RetornaForbidden(t *testing.T) {
	uc, requests, _ := fixture()

	err := uc.Approve(context.Background(), clientID, 1, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un usuario sin rol admin no puede decidir solicitudes")
	assert.Equal(t, entity.SolicitudPendiente, requests.byID[1].Estado,
		"la solicitud no debe mutarse")
}

func TestReview_Aprobar_ActualizaSolicitudYPerfil(t *testing.T) {
	uc, requests, profiles := fixture()
	comentario := "Documentación completa"

	err := uc.Approve(context.Background(), adminID, 1, &comentario)
	require.NoError(t, err)

	req := requests.byID[1]
	assert.Equal(t, entity.SolicitudAprobada, req.Estado)
	require.NotNil(t, req.FechaRevision)
	require.NotNil(t, req.Comentario)
	assert.Equal(t, comentario, *req.Comentario)

	profile := profiles.byID[10]
	assert.True(t, profile.Verificado, "la aprobación debe verificar el perfil")
	assert.Equal(t, entity.ProfileEstadoActivo, profile.Estado)
	require.NotNil(t, profile.FechaVerificacion)
}

func TestReview_Rechazar_NoTocaElPerfil(t *testing.T) {
	uc, requests, profiles := fixture()

	err := uc.Reject(context.Background(), adminID, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.SolicitudRechazada, requests.byID[1].Estado)
	require.NotNil(t, requests.byID[1].FechaRevision)

	profile := profiles.byID[10]
	assert.False(t, profile.Verificado, "el rechazo no debe verificar el perfil")
	assert.Equal(t, entity.ProfileEstadoPendiente, profile.Estado,
		"el estado del perfil debe quedar como estaba")
	assert.Nil(t, profile.FechaVerificacion)
}

func TestReview_SolicitudInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := fixture()

	err := uc.Approve(context.Background(), adminID, 999, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReview_RepetirMismaDecision_EsNoOp(t *testing.T) {
	uc, requests, _ := fixture()

	require.NoError(t, uc.Approve(context.Background(), adminID, 1, nil))
	firstReview := *requests.byID[1].FechaRevision

	err := uc.Approve(context.Background(), adminID, 1, nil)
	assert.NoError(t, err, "repetir la misma decisión debe ser idempotente")
	assert.Equal(t, firstReview, *requests.byID[1].FechaRevision,
		"la fecha de revisión original no debe sobreescribirse")
}

func TestReview_DecisionContrariaEnEstadoTerminal_RetornaConflict(t *testing.T) {
	uc, requests, profiles := fixture()

	require.NoError(t, uc.Reject(context.Background(), adminID, 1, nil))

	err := uc.Approve(context.Background(), adminID, 1, nil)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una solicitud rechazada no puede aprobarse después")
	assert.Equal(t, entity.SolicitudRechazada, requests.byID[1].Estado)
	assert.False(t, profiles.byID[10].Verificado)
}

func TestReview_ListPending_ExigeAdminYFiltraPendientes(t *testing.T) {
	uc, requests, _ := fixture()
	requests.byID[2] = &entity.VerificationRequest{ID: 2, ProfileID: 11, Estado: entity.SolicitudAprobada}

	_, err := uc.ListPending(context.Background(), clientID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.ListPending(context.Background(), adminID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].IDVerificacion)
	assert.Equal(t, entity.SolicitudPendiente, out[0].Estado)
}

func TestReview_GetDetail_IncluyePerfilYDocumentos(t *testing.T) {
	uc, _, _ := fixture()

	detail, err := uc.GetDetail(context.Background(), adminID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.IDVerificacion)
	assert.Equal(t, "Limpieza Total SRL", detail.Perfil.RazonSocial)
	require.Len(t, detail.Documentos, 1)
	assert.Equal(t, "https://s3/doc1.pdf", detail.Documentos[0].URLArchivo)
}

package provider_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviya/serviya-api/internal/application/provider"
	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID      = "00000000-0000-0000-0000-000000000001"
	testRazonSocial = "Servicios Industriales SA"
)

// memStore estado "confirmado" de la base de datos falsa.
type memStore struct {
	addresses []*entity.Address
	profiles  []*entity.CompanyProfile
	requests  []*entity.VerificationRequest
	documents []*entity.Document
	commits   int
}

// fakeTxRunner ejecuta fn contra un staging y solo lo copia al store si fn no
// falla, emulando commit/rollback.
type fakeTxRunner struct {
	store *memStore
	// duplicateOnCreate simula la violación del índice único al insertar el perfil
	// (carrera entre dos envíos que pasaron el pre-chequeo).
	duplicateOnCreate bool
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	addressRepo repository.AddressRepository,
	profileRepo repository.CompanyProfileRepository,
	requestRepo repository.VerificationRequestRepository,
	documentRepo repository.DocumentRepository,
) error) error {
	staging := &memStore{}
	err := fn(
		&fakeAddressRepo{store: staging},
		&fakeProfileRepo{store: staging, duplicateOnCreate: r.duplicateOnCreate},
		&fakeRequestRepo{store: staging},
		&fakeDocumentRepo{store: staging},
	)
	if err != nil {
		return err
	}
	r.store.addresses = append(r.store.addresses, staging.addresses...)
	r.store.profiles = append(r.store.profiles, staging.profiles...)
	r.store.requests = append(r.store.requests, staging.requests...)
	r.store.documents = append(r.store.documents, staging.documents...)
	r.store.commits++
	return nil
}

type fakeAddressRepo struct{ store *memStore }

func (r *fakeAddressRepo) Create(_ context.Context, addr *entity.Address) error {
	addr.ID = int64(len(r.store.addresses) + 1)
	r.store.addresses = append(r.store.addresses, addr)
	return nil
}

func (r *fakeAddressRepo) GetByID(_ context.Context, id int64) (*entity.Address, error) {
	for _, a := range r.store.addresses {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

type fakeProfileRepo struct {
	store             *memStore
	existing          *entity.CompanyProfile
	duplicateOnCreate bool
}

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.CompanyProfile) error {
	if r.duplicateOnCreate {
		return fmt.Errorf("%w: perfil_empresa", domain.ErrDuplicate)
	}
	p.ID = int64(len(r.store.profiles) + 100)
	r.store.profiles = append(r.store.profiles, p)
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id int64) (*entity.CompanyProfile, error) {
	for _, p := range r.store.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.CompanyProfile, error) {
	for _, p := range r.store.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByName(_ context.Context, _, _ string) (*entity.CompanyProfile, error) {
	return r.existing, nil
}

func (r *fakeProfileRepo) SetVerified(_ context.Context, id int64, at time.Time) error {
	for _, p := range r.store.profiles {
		if p.ID == id {
			p.Verificado = true
			p.Estado = entity.ProfileEstadoActivo
			p.FechaVerificacion = &at
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeRequestRepo struct{ store *memStore }

func (r *fakeRequestRepo) Create(_ context.Context, req *entity.VerificationRequest) error {
	req.ID = int64(len(r.store.requests) + 500)
	r.store.requests = append(r.store.requests, req)
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id int64) (*entity.VerificationRequest, error) {
	for _, req := range r.store.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, nil
}

func (r *fakeRequestRepo) ListByEstado(_ context.Context, estado string) ([]*entity.VerificationRequest, error) {
	var out []*entity.VerificationRequest
	for _, req := range r.store.requests {
		if req.Estado == estado {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateDecision(_ context.Context, id int64, estado string, reviewedAt time.Time, comentario *string) error {
	for _, req := range r.store.requests {
		if req.ID == id {
			req.Estado = estado
			req.FechaRevision = &reviewedAt
			req.Comentario = comentario
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeDocumentRepo struct{ store *memStore }

func (r *fakeDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	doc.ID = int64(len(r.store.documents) + 900)
	r.store.documents = append(r.store.documents, doc)
	return nil
}

func (r *fakeDocumentRepo) ListByRequest(_ context.Context, requestID int64) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.store.documents {
		if d.RequestID == requestID {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeUserRepo devuelve una razón social fija (o vacía).
type fakeUserRepo struct{ companyName string }

func (r *fakeUserRepo) GetByID(context.Context, string) (*entity.UserProfile, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetCompanyName(context.Context, string) (string, error) {
	return r.companyName, nil
}

func (r *fakeUserRepo) GetRoles(context.Context, string) ([]string, error) {
	return nil, nil
}

// recordingStorage registra las claves subidas y puede fallar en un índice dado.
type recordingStorage struct {
	keys   []string
	failAt int // índice (base 0) en el que Upload falla; -1 nunca falla
}

func newRecordingStorage(failAt int) *recordingStorage {
	return &recordingStorage{failAt: failAt}
}

func (s *recordingStorage) Upload(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	if s.failAt >= 0 && len(s.keys) == s.failAt {
		return "", errors.New("conexión rechazada por el endpoint S3")
	}
	s.keys = append(s.keys, key)
	return "https://storage.example.com/serviya-documentos/" + key, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del flujo de verificación
// ──────────────────────────────────────────────────────────────────────────────

func buildInput(nFiles int) provider.SubmitInputDTO {
	in := provider.SubmitInputDTO{
		UserID:         testUserID,
		NombreFantasia: "ServiMax",
		Direccion: provider.AddressInput{
			Calle:    "Avda. España",
			Numero:   "1234",
			Lat:      -25.28,
			Lng:      -57.63,
			IDBarrio: 7,
		},
	}
	for i := 0; i < nFiles; i++ {
		in.IDsTipDocumento = append(in.IDsTipDocumento, int64(i+1))
		in.Archivos = append(in.Archivos, provider.FileInput{
			Filename:    fmt.Sprintf("doc-%d.pdf", i),
			ContentType: "application/pdf",
			Size:        128,
			Body:        strings.NewReader("contenido"),
		})
	}
	return in
}

func TestSubmit_CantidadDeIDsNoCoincide_RetornaInvalidInput(t *testing.T) {
	store := &memStore{}
	storage := newRecordingStorage(-1)
	uc := provider.NewSubmitVerificationUseCase(
		&fakeTxRunner{store: store},
		&fakeUserRepo{companyName: testRazonSocial},
		&fakeProfileRepo{},
		storage,
	)

	in := buildInput(2)
	in.IDsTipDocumento = in.IDsTipDocumento[:1] // 1 ID para 2 archivos

	_, err := uc.Submit(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"archivos sin tipo de documento deben rechazarse antes de tocar la base")
	assert.Zero(t, store.commits, "no debe abrirse ninguna transacción")
	assert.Empty(t, storage.keys, "no debe subirse ningún blob")
}

func TestSubmit_SinRazonSocialEnPerfil_RetornaNotFound(t *testing.T) {
	store := &memStore{}
	uc := provider.NewSubmitVerificationUseCase(
		&fakeTxRunner{store: store},
		&fakeUserRepo{companyName: ""}, // perfil sin nombre_empresa
		&fakeProfileRepo{},
		newRecordingStorage(-1),
	)

	_, err := uc.Submit(context.Background(), buildInput(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, store.commits)
}

func TestSubmit_EmpresaYaRegistrada_RetornaDuplicate(t *testing.T) {
	store := &memStore{}
	uc := provider.NewSubmitVerificationUseCase(
		&fakeTxRunner{store: store},
		&fakeUserRepo{companyName: testRazonSocial},
		&fakeProfileRepo{existing: &entity.CompanyProfile{ID: 99, RazonSocial: testRazonSocial}},
		newRecordingStorage(-1),
	)

	_, err := uc.Submit(context.Background(), buildInput(1))
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"una razón social o nombre de fantasía ya registrado debe rechazarse con 409")
	assert.Zero(t, store.commits)
}

func TestSubmit_Exitoso_CreaDireccionPerfilSolicitudYDocumentos(t *testing.T) {
	store := &memStore{}
	storage := newRecordingStorage(-1)
	uc := provider.NewSubmitVerificationUseCase(
		&fakeTxRunner{store: store},
		&fakeUserRepo{companyName: testRazonSocial},
		&fakeProfileRepo{},
		storage,
	)

	result, err := uc.Submit(context.Background(), buildInput(3))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotZero(t, result.IDVerificacion)
	assert.NotZero(t, result.IDPerfil)

	require.Len(t, store.addresses, 1)
	require.Len(t, store.profiles, 1)
	require.Len(t, store.requests, 1)
	require.Len(t, store.documents, 3)

	profile := store.profiles[0]
	assert.Equal(t, testRazonSocial, profile.RazonSocial,
		"la razón social debe salir del perfil de usuario, no del request")
	assert.Equal(t, entity.ProfileEstadoPendiente, profile.Estado)
	assert.False(t, profile.Verificado, "el perfil nace sin verificar")
	assert.Equal(t, store.addresses[0].ID, profile.AddressID)

	req := store.requests[0]
	assert.Equal(t, entity.SolicitudPendiente, req.Estado)
	assert.Equal(t, profile.ID, req.ProfileID)
	assert.Nil(t, req.FechaRevision)

	require.Len(t, storage.keys, 3)
	for i, doc := range store.documents {
		assert.Equal(t, req.ID, doc.RequestID)
		assert.Equal(t, int64(i+1), doc.DocumentTypeID,
			"el documento i debe quedar asociado al tipo i (listas paralelas)")
		assert.Equal(t, entity.SolicitudPendiente, doc.EstadoRevision)
		assert.NotEmpty(t, doc.FileURL)
		// Clave del blob: userID/tipoDocumento/uuid.ext
		assert.True(t, strings.HasPrefix(storage.keys[i], fmt.Sprintf("%s/%d/", testUserID, i+1)),
			"clave inesperada: %s", storage.keys[i])
		assert.True(t, strings.HasSuffix(storage.keys[i], ".pdf"))
	}
}

func TestSubmit_FallaUnaSubida_RevierteTodo(t *testing.T) {
	store := &memStore{}
	storage := newRecordingStorage(1) // falla el segundo archivo
	uc := provider.NewSubmitVerificationUseCase(
		&fakeTxRunner{store: store},
		&fakeUserRepo{companyName: testRazonSocial},
		&fakeProfileRepo{},
		storage,
	)

	_, err := uc.Submit(context.Background(), buildInput(3))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)

	assert.Zero(t, store.commits, "la transacción debe revertirse")
	assert.Empty(t, store.profiles, "no debe quedar ningún perfil registrado")
	assert.Empty(t, store.requests)
	assert.Empty(t, store.documents)
	// El primer blob quedó huérfano en el storage (limpieza fuera de banda).
	assert.Len(t, storage.keys, 1)
}

func TestSubmit_CarreraConIndiceUnico_RetornaDuplicate(t *testing.T) {
	store := &memStore{}
	uc := provider.NewSubmitVerificationUseCase(
		&fakeTxRunner{store: store, duplicateOnCreate: true},
		&fakeUserRepo{companyName: testRazonSocial},
		&fakeProfileRepo{}, // el pre-chequeo no ve nada; la inserción sí choca
		newRecordingStorage(-1),
	)

	_, err := uc.Submit(context.Background(), buildInput(1))
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"la violación del índice único también debe mapearse a duplicado")
	assert.Zero(t, store.commits)
}

func TestSubmit_SinArchivos_EsValido(t *testing.T) {
	store := &memStore{}
	storage := newRecordingStorage(-1)
	uc := provider.NewSubmitVerificationUseCase(
		&fakeTxRunner{store: store},
		&fakeUserRepo{companyName: testRazonSocial},
		&fakeProfileRepo{},
		storage,
	)

	result, err := uc.Submit(context.Background(), buildInput(0))
	require.NoError(t, err, "cero archivos con cero IDs es un envío válido")
	require.NotNil(t, result)
	assert.Len(t, store.documents, 0)
	assert.Empty(t, storage.keys)
	assert.Equal(t, 1, store.commits)
}


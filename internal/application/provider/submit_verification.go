package provider

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/serviya/serviya-api/internal/application/ports"
	"github.com/serviya/serviya-api/internal/domain"
	"github.com/serviya/serviya-api/internal/domain/entity"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// SubmitVerificationUseCase registra de forma transaccional el perfil de empresa de
// un proveedor junto con su solicitud de verificación y los documentos adjuntos.
// Dirección → perfil → solicitud → documentos se insertan en ese orden (las filas
// posteriores referencian los IDs generados por las anteriores) y se confirman o
// revierten como una sola unidad.
type SubmitVerificationUseCase struct {
	txRunner    TxRunner
	userRepo    repository.UserProfileRepository
	profileRepo repository.CompanyProfileRepository
	storage     ports.FileStorage
}

// NewSubmitVerificationUseCase construye el caso de uso.
func NewSubmitVerificationUseCase(
	txRunner TxRunner,
	userRepo repository.UserProfileRepository,
	profileRepo repository.CompanyProfileRepository,
	storage ports.FileStorage,
) *SubmitVerificationUseCase {
	return &SubmitVerificationUseCase{
		txRunner:    txRunner,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		storage:     storage,
	}
}

// AddressInput datos de la dirección del perfil.
type AddressInput struct {
	Calle      string
	Numero     string
	Referencia *string
	Lat        float64
	Lng        float64
	IDBarrio   int64
}

// FileInput un archivo subido por el solicitante.
type FileInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// SubmitInputDTO entrada del flujo de verificación. IDsTipDocumento y Archivos son
// listas paralelas: el archivo i corresponde al tipo de documento i.
type SubmitInputDTO struct {
	UserID          string
	NombreFantasia  string
	Direccion       AddressInput
	IDsTipDocumento []int64
	Archivos        []FileInput
	Comentario      *string
}

// SubmitResultDTO identificadores generados por un envío exitoso.
type SubmitResultDTO struct {
	IDVerificacion int64
	IDPerfil       int64
}

// Submit valida la entrada, resuelve la razón social del perfil del usuario y crea
// dirección + perfil + solicitud + documentos dentro de una transacción.
//
// La razón social nunca se acepta del caller: se lee del perfil almacenado, para que
// nadie pueda registrar una empresa a nombre de otro.
//
// Los archivos se suben al blob store dentro del cuerpo transaccional; si un paso
// posterior falla, la transacción revierte pero los blobs ya subidos no se borran
// (quedan huérfanos y se registran en el log para limpieza fuera de banda).
func (uc *SubmitVerificationUseCase) Submit(ctx context.Context, in SubmitInputDTO) (*SubmitResultDTO, error) {
	// Validación previa, sin efectos: cada archivo debe traer su tipo de documento.
	if len(in.IDsTipDocumento) != len(in.Archivos) {
		return nil, fmt.Errorf("%w: el número de IDs de tipo de documento no coincide con el número de archivos", domain.ErrInvalidInput)
	}
	if in.NombreFantasia == "" || in.Direccion.Calle == "" || in.Direccion.Numero == "" {
		return nil, fmt.Errorf("%w: nombre_fantasia, calle y numero son requeridos", domain.ErrInvalidInput)
	}

	razonSocial, err := uc.userRepo.GetCompanyName(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if razonSocial == "" {
		return nil, fmt.Errorf("%w: el nombre de la empresa no está disponible en el perfil de usuario", domain.ErrNotFound)
	}

	// Pre-chequeo de unicidad: una sola inscripción activa/pendiente por identidad de
	// empresa. Dos envíos concurrentes pueden pasar ambos este chequeo; el índice
	// único de la base es la guarda definitiva y su violación también llega como
	// ErrDuplicate desde el repositorio.
	existing, err := uc.profileRepo.FindByName(ctx, razonSocial, in.NombreFantasia)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: una empresa con esta razón social o nombre de fantasía ya está registrada", domain.ErrDuplicate)
	}

	now := time.Now()
	var result SubmitResultDTO
	var uploaded []string

	err = uc.txRunner.Run(ctx, func(
		addressRepo repository.AddressRepository,
		profileRepo repository.CompanyProfileRepository,
		requestRepo repository.VerificationRequestRepository,
		documentRepo repository.DocumentRepository,
	) error {
		addr := &entity.Address{
			Calle:          in.Direccion.Calle,
			Numero:         in.Direccion.Numero,
			Referencia:     in.Direccion.Referencia,
			Lat:            in.Direccion.Lat,
			Lng:            in.Direccion.Lng,
			NeighborhoodID: in.Direccion.IDBarrio,
			CreatedAt:      now,
		}
		if err := addressRepo.Create(ctx, addr); err != nil {
			return err
		}

		profile := &entity.CompanyProfile{
			UserID:         in.UserID,
			RazonSocial:    razonSocial,
			NombreFantasia: in.NombreFantasia,
			AddressID:      addr.ID,
			Estado:         entity.ProfileEstadoPendiente,
			Verificado:     false,
			FechaInicio:    now,
			CreatedAt:      now,
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			return err
		}

		req := &entity.VerificationRequest{
			ProfileID:      profile.ID,
			Estado:         entity.SolicitudPendiente,
			FechaSolicitud: now,
			Comentario:     in.Comentario,
		}
		if err := requestRepo.Create(ctx, req); err != nil {
			return err
		}

		// Subida y registro de documentos en el orden recibido.
		for i, file := range in.Archivos {
			key := uc.objectKey(in.UserID, in.IDsTipDocumento[i], file.Filename)
			url, err := uc.storage.Upload(ctx, key, file.Body, file.Size, file.ContentType)
			if err != nil {
				return fmt.Errorf("%w: documento %d (%s): %v", domain.ErrUploadFailed, i, file.Filename, err)
			}
			uploaded = append(uploaded, key)

			doc := &entity.Document{
				RequestID:      req.ID,
				DocumentTypeID: in.IDsTipDocumento[i],
				EstadoRevision: entity.SolicitudPendiente,
				FileURL:        url,
				CreatedAt:      now,
			}
			if err := documentRepo.Create(ctx, doc); err != nil {
				return err
			}
		}

		result = SubmitResultDTO{IDVerificacion: req.ID, IDPerfil: profile.ID}
		return nil
	})
	if err != nil {
		// Los blobs subidos antes del fallo quedan huérfanos: se registran sus claves
		// para limpieza fuera de banda.
		if len(uploaded) > 0 {
			log.Warn().
				Str("user_id", in.UserID).
				Strs("orphaned_keys", uploaded).
				Msg("solicitud de verificación revertida con blobs huérfanos")
		}
		return nil, err
	}
	return &result, nil
}

// objectKey arma la clave del blob: userID/tipoDocumento/uuid.ext. El sufijo uuid
// evita colisiones entre envíos del mismo usuario y tipo.
func (uc *SubmitVerificationUseCase) objectKey(userID string, docTypeID int64, filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	name := uuid.New().String()
	if ext != "" {
		name = name + "." + ext
	}
	return fmt.Sprintf("%s/%d/%s", userID, docTypeID, name)
}

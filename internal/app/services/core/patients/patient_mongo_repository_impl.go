package patients

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/shared/ownership"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *ownership.Collection[models.Patient]
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: ownership.NewCollection[models.Patient](db.Collection(constvars.MongoCollectionPatients)),
	}
}

func (r *PatientMongoRepository) Find(ctx context.Context, caller *models.Caller, search string, skip, limit int64) ([]models.Patient, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.Collection.Find(ctx, caller, searchFilter(search), opts)
}

func (r *PatientMongoRepository) Count(ctx context.Context, caller *models.Caller, search string) (int64, error) {
	return r.Collection.Count(ctx, caller, searchFilter(search))
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, caller *models.Caller, patientID string) (*models.Patient, error) {
	return r.Collection.FindByID(ctx, caller, patientID)
}

func (r *PatientMongoRepository) FindByIDs(ctx context.Context, caller *models.Caller, patientIDs []string) ([]models.Patient, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(patientIDs))
	for _, id := range patientIDs {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []models.Patient{}, nil
	}
	return r.Collection.Find(ctx, caller, bson.M{"_id": bson.M{"$in": objectIDs}})
}

func (r *PatientMongoRepository) Create(ctx context.Context, caller *models.Caller, patient *models.Patient) (string, error) {
	return r.Collection.Insert(ctx, caller, patient)
}

func (r *PatientMongoRepository) Update(ctx context.Context, caller *models.Caller, patient *models.Patient) error {
	update := bson.M{
		"$set": bson.M{
			"firstName":        patient.FirstName,
			"lastName":         patient.LastName,
			"birthDate":        patient.BirthDate,
			"phoneCountryCode": patient.PhoneCountryCode,
			"phone":            patient.Phone,
			"email":            patient.Email,
			"updatedAt":        patient.UpdatedAt,
		},
	}
	matched, err := r.Collection.UpdateByID(ctx, caller, patient.ID, update)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrNotFound(nil, constvars.ResourcePatient)
	}
	return nil
}

func (r *PatientMongoRepository) Delete(ctx context.Context, caller *models.Caller, patientID string) error {
	deleted, err := r.Collection.DeleteByID(ctx, caller, patientID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrNotFound(nil, constvars.ResourcePatient)
	}
	return nil
}

// searchFilter matches the term case-insensitively against either name.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
		},
	}
}

package medicalRecords

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/shared/ownership"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicalRecordMongoRepository struct {
	Collection *ownership.Collection[models.MedicalRecord]
}

func NewMedicalRecordMongoRepository(db *mongo.Database) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: ownership.NewCollection[models.MedicalRecord](db.Collection(constvars.MongoCollectionMedicalRecords)),
	}
}

func (r *MedicalRecordMongoRepository) FindByPatientID(ctx context.Context, caller *models.Caller, patientID string) ([]models.MedicalRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	return r.Collection.Find(ctx, caller, bson.M{"patientId": patientID}, opts)
}

func (r *MedicalRecordMongoRepository) FindByID(ctx context.Context, caller *models.Caller, recordID string) (*models.MedicalRecord, error) {
	return r.Collection.FindByID(ctx, caller, recordID)
}

func (r *MedicalRecordMongoRepository) FindByAttachment(ctx context.Context, caller *models.Caller, storageName string) (*models.MedicalRecord, error) {
	return r.Collection.FindOne(ctx, caller, bson.M{"attachments.storageName": storageName})
}

func (r *MedicalRecordMongoRepository) Create(ctx context.Context, caller *models.Caller, record *models.MedicalRecord) (string, error) {
	// $push on update needs an array, never a null field.
	if record.Attachments == nil {
		record.Attachments = []models.Attachment{}
	}
	return r.Collection.Insert(ctx, caller, record)
}

func (r *MedicalRecordMongoRepository) Update(ctx context.Context, caller *models.Caller, record *models.MedicalRecord, newAttachments []models.Attachment) error {
	update := bson.M{
		"$set": bson.M{
			"date":         record.Date,
			"diagnosis":    record.Diagnosis,
			"prescription": record.Prescription,
			"notes":        record.Notes,
			"updatedAt":    record.UpdatedAt,
		},
	}
	if len(newAttachments) > 0 {
		update["$push"] = bson.M{
			"attachments": bson.M{"$each": newAttachments},
		}
	}

	matched, err := r.Collection.UpdateByID(ctx, caller, record.ID, update)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrNotFound(nil, constvars.ResourceMedicalRecord)
	}
	return nil
}

func (r *MedicalRecordMongoRepository) Delete(ctx context.Context, caller *models.Caller, recordID string) error {
	deleted, err := r.Collection.DeleteByID(ctx, caller, recordID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrNotFound(nil, constvars.ResourceMedicalRecord)
	}
	return nil
}

func (r *MedicalRecordMongoRepository) Count(ctx context.Context, caller *models.Caller) (int64, error) {
	return r.Collection.Count(ctx, caller, bson.M{})
}

package appointments

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

type AppointmentMongoRepository struct {
	Collection *ownership.Collection[models.Appointment]
}

func NewAppointmentMongoRepository(db *mongo.Database) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: ownership.NewCollection[models.Appointment](db.Collection(constvars.MongoCollectionAppointments)),
	}
}

func (r *AppointmentMongoRepository) Find(ctx context.Context, caller *models.Caller, from, to string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	return r.Collection.Find(ctx, caller, dateRangeFilter(from, to), opts)
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, caller *models.Caller, appointmentID string) (*models.Appointment, error) {
	return r.Collection.FindByID(ctx, caller, appointmentID)
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, caller *models.Caller, appointment *models.Appointment) (string, error) {
	return r.Collection.Insert(ctx, caller, appointment)
}

func (r *AppointmentMongoRepository) Update(ctx context.Context, caller *models.Caller, appointment *models.Appointment) error {
	update := bson.M{
		"$set": bson.M{
			"patientId": appointment.PatientID,
			"date":      appointment.Date,
			"time":      appointment.Time,
			"reason":    appointment.Reason,
			"status":    appointment.Status,
			"updatedAt": appointment.UpdatedAt,
		},
	}
	matched, err := r.Collection.UpdateByID(ctx, caller, appointment.ID, update)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrNotFound(nil, constvars.ResourceAppointment)
	}
	return nil
}

func (r *AppointmentMongoRepository) Delete(ctx context.Context, caller *models.Caller, appointmentID string) error {
	deleted, err := r.Collection.DeleteByID(ctx, caller, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrNotFound(nil, constvars.ResourceAppointment)
	}
	return nil
}

func (r *AppointmentMongoRepository) Count(ctx context.Context, caller *models.Caller, fromDate string) (int64, error) {
	return r.Collection.Count(ctx, caller, dateRangeFilter(fromDate, ""))
}

// Dates are stored as YYYY-MM-DD so lexical comparison orders them.
func dateRangeFilter(from, to string) bson.M {
	dateRange := bson.M{}
	if from != "" {
		dateRange["$gte"] = from
	}
	if to != "" {
		dateRange["$lte"] = to
	}
	if len(dateRange) == 0 {
		return bson.M{}
	}
	return bson.M{"date": dateRange}
}

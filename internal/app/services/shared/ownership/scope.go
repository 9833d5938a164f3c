// Package ownership confines every patient, appointment and medical record
// query to the documents owned by the calling practitioner.
package ownership

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OwnerField = "ownerId"

// Owned is implemented by documents that carry an owner reference.
type Owned interface {
	SetOwnerID(ownerID string)
}

// Scope returns a copy of filter restricted to the caller's documents.
// Any owner condition already present in filter is overridden.
func Scope(caller *models.Caller, filter bson.M) (bson.M, error) {
	if caller == nil || caller.UserID == "" {
		return nil, exceptions.ErrMissingCaller(nil)
	}
	scoped := make(bson.M, len(filter)+1)
	for key, value := range filter {
		scoped[key] = value
	}
	scoped[OwnerField] = caller.UserID
	return scoped, nil
}

// Stamp sets the caller as owner of doc, whatever the payload said.
func Stamp(caller *models.Caller, doc Owned) error {
	if caller == nil || caller.UserID == "" {
		return exceptions.ErrMissingCaller(nil)
	}
	doc.SetOwnerID(caller.UserID)
	return nil
}

// ByID builds an _id filter. ok is false when id is not a valid ObjectID,
// which callers report as not found.
func ByID(id string) (filter bson.M, ok bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": objectID}, true
}

package repository

import (
	"fmt"

	"movie-social/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// validateDocument applies the validate tags of a document before it is written.
func validateDocument(doc any) error {
	if errs := utils.ValidateStruct(doc); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, utils.FormatValidationErrors(errs))
	}
	return nil
}

// objectID parses a hex id. Malformed ids address no document.
func objectID(hex string) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, false
	}
	return id, true
}

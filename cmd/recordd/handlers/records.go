package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/recordbin/recordbin/pkg/api/types/errors"
	apirecords "github.com/recordbin/recordbin/pkg/api/types/records"
	kdb "github.com/recordbin/recordbin/pkg/db"
)

// PostRecordHandler parses the request body as a JSON object and stores it
// verbatim.
//
// Anything which is not a JSON object (malformed JSON, a bare array, number,
// string, null, or an empty body) is a client error. The store never sees it.
func PostRecordHandler(dbRecords kdb.RecordInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body interface{}
		dec := json.NewDecoder(c.Request().Body)
		if err := dec.Decode(&body); err != nil {
			return apierr.BadRequest("request body should be a JSON object", err)
		}
		// a body like `{"k": 1}garbage` is not a JSON object either.
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return apierr.BadRequest("request body should be a single JSON object", err)
		}
		document, ok := body.(map[string]interface{})
		if !ok {
			return apierr.BadRequest("request body should be a JSON object", nil)
		}

		if _, err := dbRecords.Insert(ctx, kdb.Document(document)); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apirecords.Inserted())
	}
}

// GetRecordsHandler returns every stored document as a JSON array.
//
// An empty collection is an empty array, never null.
func GetRecordsHandler(dbRecords kdb.RecordInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := dbRecords.ScanAll(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if found == nil {
			found = []kdb.Document{}
		}

		return c.JSON(http.StatusOK, found)
	}
}

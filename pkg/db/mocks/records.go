package mocks

import (
	"context"
	"errors"

	kdb "github.com/recordbin/recordbin/pkg/db"
)

type RecordInterface struct {
	Impl struct {
		Insert  func(context.Context, kdb.Document) (string, error)
		ScanAll func(context.Context) ([]kdb.Document, error)
	}
	Calls struct {
		Insert  CallLog[struct{ Document kdb.Document }]
		ScanAll CallLog[struct{}]
	}
}

func NewRecordInterface() *RecordInterface {
	return &RecordInterface{}
}

var _ kdb.RecordInterface = &RecordInterface{}

func (ri *RecordInterface) Insert(ctx context.Context, document kdb.Document) (string, error) {
	ri.Calls.Insert = append(ri.Calls.Insert, struct{ Document kdb.Document }{Document: document})
	if ri.Impl.Insert != nil {
		return ri.Impl.Insert(ctx, document)
	}
	panic(errors.New("it should not be called"))
}

func (ri *RecordInterface) ScanAll(ctx context.Context) ([]kdb.Document, error) {
	ri.Calls.ScanAll = append(ri.Calls.ScanAll, struct{}{})
	if ri.Impl.ScanAll != nil {
		return ri.Impl.ScanAll(ctx)
	}
	panic(errors.New("it should not be called"))
}

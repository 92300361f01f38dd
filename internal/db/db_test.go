package db

import "testing"

func TestInitEmptyDSN(t *testing.T) {
	if err := Init(""); err == nil {
		t.Error("Init(\"\") should fail")
	}
}

func TestCloseWithoutInit(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("Close() without Init error = %v", err)
	}
}

package models

import (
	"encoding/json"
	"testing"
)

func TestDecodeInboundCodeUpdate(t *testing.T) {
	msg := DecodeInbound([]byte(`{"type":"code_update","code":"print(1)"}`))
	update, ok := msg.(CodeUpdate)
	if !ok || update.Code != "print(1)" {
		t.Fatalf("unexpected message: %#v", msg)
	}
}

func TestDecodeInboundCursorUpdate(t *testing.T) {
	msg := DecodeInbound([]byte(`{"type":"cursor_update","cursorPosition":{"line":2},"userId":"u1"}`))
	cursor, ok := msg.(CursorUpdate)
	if !ok || cursor.UserID != "u1" {
		t.Fatalf("unexpected message: %#v", msg)
	}
	var pos map[string]int
	if err := json.Unmarshal(cursor.CursorPosition, &pos); err != nil || pos["line"] != 2 {
		t.Fatalf("cursor position not preserved: %s", cursor.CursorPosition)
	}
}

func TestDecodeInboundCursorUpdateDefaultsUserID(t *testing.T) {
	msg := DecodeInbound([]byte(`{"type":"cursor_update","cursorPosition":5}`))
	cursor, ok := msg.(CursorUpdate)
	if !ok || cursor.UserID != "unknown" {
		t.Fatalf("expected unknown user id, got %#v", msg)
	}
}

func TestDecodeInboundNonJSONIsLiteralEdit(t *testing.T) {
	msg := DecodeInbound([]byte("hello"))
	update, ok := msg.(CodeUpdate)
	if !ok || update.Code != "hello" {
		t.Fatalf("expected literal code update, got %#v", msg)
	}
}

func TestDecodeInboundUnknownTypeIsLiteralEdit(t *testing.T) {
	raw := `{"type":"ping"}`
	msg := DecodeInbound([]byte(raw))
	update, ok := msg.(CodeUpdate)
	if !ok || update.Code != raw {
		t.Fatalf("expected literal code update, got %#v", msg)
	}
}

func TestCodeBroadcastWireFormat(t *testing.T) {
	b, err := json.Marshal(NewCodeBroadcast("abc12345", "x = 1"))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["type"] != TypeCodeUpdate || m["code"] != "x = 1" || m["roomId"] != "abc12345" {
		t.Fatalf("unexpected frame: %v", m)
	}
}

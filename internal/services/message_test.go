package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func newMessageSvc() (*MessageService, *memUsers) {
	users := newMemUsers()
	return NewMessageService(newMemMessages(), users), users
}

func TestSendMessage(t *testing.T) {
	svc, users := newMessageSvc()
	alice := addUser(t, users, "alice", 3)
	bob := addUser(t, users, "bob", 3)

	msg, err := svc.Send(context.Background(), alice, bob, "hi bob")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.ID == "" {
		t.Fatal("empty message id")
	}
	if msg.SenderID != alice || msg.ReceiverID != bob {
		t.Errorf("parties: %s -> %s", msg.SenderID, msg.ReceiverID)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("missing timestamp")
	}
}

func TestSendMessageValidation(t *testing.T) {
	svc, users := newMessageSvc()
	alice := addUser(t, users, "alice", 3)
	bob := addUser(t, users, "bob", 3)

	if _, err := svc.Send(context.Background(), alice, "", "hi"); !IsValidation(err) {
		t.Errorf("empty receiver: got %v", err)
	}
	if _, err := svc.Send(context.Background(), alice, bob, ""); !IsValidation(err) {
		t.Errorf("empty content: got %v", err)
	}
	if _, err := svc.Send(context.Background(), alice, uuid.New().String(), "hi"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown receiver: got %v", err)
	}
}

func TestListBetweenOrderingAndIsolation(t *testing.T) {
	svc, users := newMessageSvc()
	alice := addUser(t, users, "alice", 3)
	bob := addUser(t, users, "bob", 3)
	carol := addUser(t, users, "carol", 3)

	const n = 5
	for i := 0; i < n; i++ {
		sender, receiver := alice, bob
		if i%2 == 1 {
			sender, receiver = bob, alice
		}
		if _, err := svc.Send(context.Background(), sender, receiver, fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}
	// unrelated conversation
	if _, err := svc.Send(context.Background(), alice, carol, "secret"); err != nil {
		t.Fatalf("send to carol: %v", err)
	}

	list, err := svc.ListBetween(context.Background(), alice, bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != n {
		t.Fatalf("expected %d messages, got %d", n, len(list))
	}
	for i, msg := range list {
		if msg.Content != fmt.Sprintf("msg-%d", i) {
			t.Errorf("position %d: got %q", i, msg.Content)
		}
		if msg.SenderID == carol || msg.ReceiverID == carol {
			t.Error("carol's conversation leaked into alice-bob list")
		}
	}

	// both directions see the same conversation
	reversed, err := svc.ListBetween(context.Background(), bob, alice)
	if err != nil {
		t.Fatalf("list reversed: %v", err)
	}
	if len(reversed) != n {
		t.Errorf("reversed list: got %d messages", len(reversed))
	}
}

func TestListBetweenEmpty(t *testing.T) {
	svc, users := newMessageSvc()
	alice := addUser(t, users, "alice", 3)
	bob := addUser(t, users, "bob", 3)

	list, err := svc.ListBetween(context.Background(), alice, bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d", len(list))
	}
}

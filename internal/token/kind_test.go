package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{Ident, "Ident"},
		{KwLet, "KwLet"},
		{IntLit, "IntLit"},
		{Assign, "Assign"},
		{RBracket, "RBracket"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): expected %q, got %q", tt.kind, tt.want, got)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !(Token{Kind: KwLet}).IsKeyword() {
		t.Error("KwLet should be a keyword")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("Ident should not be a keyword")
	}
	if !(Token{Kind: IntLit}).IsLiteral() {
		t.Error("IntLit should be a literal")
	}
	if !(Token{Kind: KwTrue}).IsLiteral() {
		t.Error("KwTrue counts as a boolean literal")
	}
	if !(Token{Kind: Assign}).IsPunctOrOp() {
		t.Error("Assign should be an operator")
	}
	if (Token{Kind: EOF}).IsPunctOrOp() {
		t.Error("EOF is not an operator")
	}
}

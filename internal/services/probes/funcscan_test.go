package probes

import "testing"

const adverseSource = `
contract Token {
	function setBalance(address who, uint256 amount) external onlyOwner {}
	function setFee(uint256 fee) external onlyOwner {}
	function pause() external onlyOwner {}
	function transfer(address to, uint256 amount) public returns (bool) {}
}`

func TestClassifySourceFindsSeverities(t *testing.T) {
	f := ClassifySource(adverseSource)
	if f.Critical != 1 {
		t.Fatalf("expected 1 critical finding, got %d", f.Critical)
	}
	if f.High != 1 {
		t.Fatalf("expected 1 high finding, got %d", f.High)
	}
	if f.Medium < 1 {
		t.Fatalf("expected at least 1 medium finding, got %d", f.Medium)
	}
	if f.Total() != f.Critical+f.High+f.Medium {
		t.Fatalf("total mismatch: %d", f.Total())
	}
}

func TestClassifySourceCleanContract(t *testing.T) {
	src := `contract Token {
		function transfer(address to, uint256 amount) public returns (bool) {}
		function approve(address spender, uint256 amount) public returns (bool) {}
	}`
	if f := ClassifySource(src); f.Total() != 0 {
		t.Fatalf("clean contract must have no findings, got %+v", f)
	}
}

func TestClassifySourceCaseInsensitive(t *testing.T) {
	f := ClassifySource("function SETBALANCE(address a, uint256 v) external {}")
	if f.Critical != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", f)
	}
}

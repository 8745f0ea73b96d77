package usecase

import "sync/atomic"

// Atualizador dá a cada recarga de uma visão um carimbo monotônico: uma
// recarga só renderiza se o seu carimbo ainda for o atual. Recargas
// sobrepostas continuam todas sendo enviadas (não há deduplicação), mas
// uma resposta atrasada nunca sobrescreve uma renderização mais nova.
type Atualizador struct {
	versao atomic.Uint64
}

// Iniciar registra uma nova recarga e devolve o carimbo dela.
func (a *Atualizador) Iniciar() uint64 {
	return a.versao.Add(1)
}

// Atual informa se o carimbo ainda é o mais recente.
func (a *Atualizador) Atual(v uint64) bool {
	return a.versao.Load() == v
}

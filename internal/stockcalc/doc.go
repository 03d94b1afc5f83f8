// Package stockcalc concentra as regras derivadas de estoque e pedidos:
// classificação de status, ajuste de quantidade, cálculo de entregas/backorder,
// agrupamento de relatórios por período e reconstrução do razão.
//
// Todas as funções são puras e determinísticas. Validação de entrada é feita
// pelas funções Validate* antes do cálculo; efeitos (gravar estoque, gravar o
// razão) ficam a cargo de quem chama.
package stockcalc

package main

import "orthocare-api/internal/domain/entity"

var permissions = []entity.Permission{
	{Name: "payments.view", Label: "Visualizar Pagamentos"},
	{Name: "payments.process", Label: "Processar Pagamentos"},
	{Name: "invoices.view", Label: "Visualizar Faturas"},
	{Name: "invoices.generate", Label: "Gerar Faturas"},
	{Name: "reports.view", Label: "Visualizar Relatórios"},
	{Name: entity.PermissionAuditLogsView, Label: "Visualizar Logs de Auditoria"},
	{Name: "settings.view", Label: "Visualizar Configurações"},
	{Name: "settings.update", Label: "Atualizar Configurações"},
	{Name: entity.PermissionFullAccess, Label: "Acesso Total"},
}

type profileSeed struct {
	entity.Profile
	permissionNames []string
}

var profiles = []profileSeed{
	{
		Profile: entity.Profile{
			Name:        entity.ProfileGeneralAdmin,
			Label:       "Administrador Geral",
			Description: "Acesso total ao sistema com a meta-permissão de 'Acesso Total'.",
		},
		permissionNames: []string{entity.PermissionFullAccess},
	},
}

var categories = []entity.Category{
	{Name: "MEDICAMENTO", Label: "Medicamentos"},
	{Name: "MATERIAL_CIRURGICO", Label: "Material Cirúrgico"},
	{Name: "ORTESE", Label: "Órteses"},
	{Name: "PROTESE", Label: "Próteses"},
	{Name: "CONSUMIVEL", Label: "Consumíveis"},
	{Name: "EQUIPAMENTO", Label: "Equipamentos"},
}

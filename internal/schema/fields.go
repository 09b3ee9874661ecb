package schema

import "metreg/model"

// catalog is the full ordered set of equipment record fields. It is created
// once at startup and never mutated.
var catalog = []model.FieldDefinition{
	// Equipment.
	{Key: "equipment_name", Label: "Наименование", Group: model.GroupEquipment, Type: model.FieldString, Searchable: true},
	{Key: "equipment_model", Label: "Модель", Group: model.GroupEquipment, Type: model.FieldString, Searchable: true},
	{Key: "equipment_type", Label: "Тип оборудования", Group: model.GroupEquipment, Type: model.FieldEnum, Searchable: true, Options: []model.Option{
		{Label: "СИ (Средство измерения)", Value: "SI"},
		{Label: "ИО (Испытательное оборудование)", Value: "IO"},
	}},
	{Key: "equipment_specs", Label: "Характеристики", Group: model.GroupEquipment, Type: model.FieldString, Searchable: true},
	{Key: "factory_number", Label: "Зав. №", Group: model.GroupEquipment, Type: model.FieldString, Searchable: true},
	{Key: "inventory_number", Label: "Инв. №", Group: model.GroupEquipment, Type: model.FieldString, Searchable: true},
	{Key: "equipment_year", Label: "Год выпуска", Group: model.GroupEquipment, Type: model.FieldNumber, Searchable: true},

	// Verification.
	{Key: "verification_type", Label: "Тип верификации", Group: model.GroupVerification, Type: model.FieldEnum, Searchable: true, Options: []model.Option{
		{Label: "Калибровка", Value: model.WorkCalibration},
		{Label: "Поверка", Value: model.WorkVerification},
		{Label: "Аттестация", Value: model.WorkCertification},
	}},
	{Key: "registry_number", Label: "Номер в реестре", Group: model.GroupVerification, Type: model.FieldString, Searchable: true},
	{Key: "verification_interval", Label: "Интервал", Group: model.GroupVerification, Type: model.FieldNumber},
	{Key: "verification_date", Label: "Дата верификации", Group: model.GroupVerification, Type: model.FieldDate},
	{Key: "verification_due", Label: "Действует до", Group: model.GroupVerification, Type: model.FieldDate, Computed: true},
	{Key: "verification_plan", Label: "План", Group: model.GroupVerification, Type: model.FieldDate},
	{Key: "verification_state", Label: "Состояние", Group: model.GroupVerification, Type: model.FieldEnum, Searchable: true, Options: []model.Option{
		{Label: "В работе", Value: model.StateWork},
		{Label: "На хранении", Value: model.StateStorage},
		{Label: "На верификации", Value: model.StateVerification},
		{Label: "В ремонте", Value: model.StateRepair},
		{Label: "Архивировано", Value: model.StateArchived},
	}},
	{Key: "status", Label: "Статус", Group: model.GroupVerification, Type: model.FieldEnum, Searchable: true, Options: []model.Option{
		{Label: "Годен", Value: model.StatusFit},
		{Label: "Просрочен", Value: model.StatusExpired},
		{Label: "Истекает", Value: model.StatusExpiring},
		{Label: "На хранении", Value: model.StatusStorage},
		{Label: "На верификации", Value: model.StatusVerification},
		{Label: "На ремонте", Value: model.StatusRepair},
	}},

	// Responsibility.
	{Key: "department", Label: "Подразделение", Group: model.GroupResponsibility, Type: model.FieldString, Searchable: true},
	{Key: "responsible_person", Label: "Ответственный", Group: model.GroupResponsibility, Type: model.FieldString, Searchable: true},
	{Key: "verifier_org", Label: "Организация-поверитель", Group: model.GroupResponsibility, Type: model.FieldString, Searchable: true},

	// Finance.
	{Key: "cost_rate", Label: "Стоимость за единицу", Group: model.GroupFinance, Type: model.FieldNumber},
	{Key: "quantity", Label: "Количество", Group: model.GroupFinance, Type: model.FieldNumber},
	{Key: "coefficient", Label: "Коэффициент", Group: model.GroupFinance, Type: model.FieldNumber},
	{Key: "total_cost", Label: "Общая стоимость", Group: model.GroupFinance, Type: model.FieldNumber},
	{Key: "invoice_number", Label: "Номер счета", Group: model.GroupFinance, Type: model.FieldString, Searchable: true},
	{Key: "paid_amount", Label: "Оплачено", Group: model.GroupFinance, Type: model.FieldNumber},
	{Key: "payment_date", Label: "Дата оплаты", Group: model.GroupFinance, Type: model.FieldDate},
}

// groups is the four-group presentation catalog.
var groups = []model.GroupInfo{
	{Key: model.GroupEquipment, Label: "Оборудование", Icon: "construct-outline"},
	{Key: model.GroupVerification, Label: "Верификация", Icon: "checkmark-circle-outline"},
	{Key: model.GroupResponsibility, Label: "Ответственность", Icon: "people-outline"},
	{Key: model.GroupFinance, Label: "Финансы", Icon: "cash-outline"},
}

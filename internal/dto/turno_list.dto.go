package dto

// Listado del cliente: sus turnos con los datos visibles del taller.
type TurnoClienteDTO struct {
	ID            uint     `json:"id"`
	Fecha         string   `json:"fecha"`
	Hora          string   `json:"hora"`
	Estado        string   `json:"estado"`
	MontoAsignado *float64 `json:"monto_asignado"`

	TallerID        uint   `json:"taller_id"`
	TallerNombre    string `json:"taller_nombre"`
	TallerDireccion string `json:"taller_direccion"`
}

// Listado del taller: los turnos que le reservaron, con los datos visibles
// del cliente.
type TurnoTallerDTO struct {
	ID            uint     `json:"id"`
	Fecha         string   `json:"fecha"`
	Hora          string   `json:"hora"`
	Estado        string   `json:"estado"`
	MontoAsignado *float64 `json:"monto_asignado"`

	ClienteID       uint   `json:"cliente_id"`
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteApellido string `json:"cliente_apellido"`
	ClienteTelefono string `json:"cliente_telefono"`
}

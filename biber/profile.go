// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of LINGPROF.
//
//  LINGPROF is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  LINGPROF is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with LINGPROF.  If not, see <https://www.gnu.org/licenses/>.

package biber

import (
	"lingprof/lperror"
	"lingprof/results"
)

// Profile evaluates all 65 computable features in declaration order.
// An empty token stream makes every rate undefined, so the whole
// profile fails with DegenerateInputError (no partial results).
func (t *Text) Profile() (*results.Profile, error) {
	if len(t.Tokens) == 0 {
		return nil, lperror.DegenerateInputError{
			Msg: "cannot compute Biber profile: text has no tokens",
		}
	}
	p := results.NewProfile(results.ProfileTypeBiber)
	p.Set("PASTTENSE", t.feature01())
	p.Set("PERFECTS", t.feature02())
	p.Set("PRES", t.feature03())
	p.Set("PL_ADV", t.feature04())
	p.Set("TM_ADV", t.feature05())
	p.Set("PRO1", t.feature06())
	p.Set("PRO2", t.feature07())
	p.Set("PRO3", t.feature08())
	p.Set("IT", t.feature09())
	p.Set("PDEM", t.feature10())
	p.Set("PANY", t.feature11())
	p.Set("PRO_DO", t.feature12())
	p.Set("WH_QUES", t.feature13())
	p.Set("N_NOM", t.feature14())
	p.Set("AGLS_PSV", t.feature17())
	p.Set("BY_PASV", t.feature18())
	p.Set("BE_STATE", t.feature19())
	p.Set("EX_THERE", t.feature20())
	p.Set("TH_CL", t.feature21())
	p.Set("ADJ_CL", t.feature22())
	p.Set("WH_CL", t.feature23())
	p.Set("INF", t.feature24())
	p.Set("CL_VBG", t.feature25())
	p.Set("CL_VBN", t.feature26())
	p.Set("WHIZ_VBN", t.feature27())
	p.Set("WHIZ_VBG", t.feature28())
	p.Set("THTREL_S", t.feature29())
	p.Set("THTREL_O", t.feature30())
	p.Set("REL_SUBJ", t.feature31())
	p.Set("REL_OBJ", t.feature32())
	p.Set("REL_PIPE", t.feature33())
	p.Set("SENT_REL", t.feature34())
	p.Set("SUB_COS", t.feature35())
	p.Set("SUB_CON", t.feature36())
	p.Set("SUB_CND", t.feature37())
	p.Set("SUB_OTHR", t.feature38())
	p.Set("PREP", t.feature39())
	p.Set("ADJ_ATTR", t.feature40())
	p.Set("ADJ_PRED", t.feature41())
	p.Set("ADVS", t.feature42())
	p.Set("TYPETOKEN", t.feature43())
	p.Set("WORDLNGTH", t.feature44())
	p.Set("CONJNCTS", t.feature45())
	p.Set("DOWNTONE", t.feature46())
	p.Set("GENHDG", t.feature47())
	p.Set("AMPLIFR", t.feature48())
	p.Set("GEN_EMPH", t.feature49())
	p.Set("PARTCLE", t.feature50())
	p.Set("DEM", t.feature51())
	p.Set("POS_MOD", t.feature52())
	p.Set("NEC_MOD", t.feature53())
	p.Set("PRD_MOD", t.feature54())
	p.Set("PUB_VB", t.feature55())
	p.Set("PRV_VB", t.feature56())
	p.Set("SUA_VB", t.feature57())
	p.Set("SEEM", t.feature58())
	p.Set("CONTRAC", t.feature59())
	p.Set("THAT_DEL", t.feature60())
	p.Set("FINLPREP", t.feature61())
	p.Set("SPL_INF", t.feature62())
	p.Set("SPL_AUX", t.feature63())
	p.Set("P_AND", t.feature64())
	p.Set("O_AND", t.feature65())
	p.Set("SYNTHNEG", t.feature66())
	p.Set("NOT_NEG", t.feature67())
	return p, nil
}
